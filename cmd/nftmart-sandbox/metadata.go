package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nftmart-dev/nftmart-contract-sdk/application/metadata"
	"github.com/nftmart-dev/nftmart-contract-sdk/application/schema"
	"github.com/nftmart-dev/nftmart-contract-sdk/contract"
)

func newMetadataCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Print the contract metadata as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				data []byte
				err  error
			)
			if message != "" {
				msg, ok := contract.LookupMessage(message)
				if !ok {
					return fmt.Errorf("unknown message %q", message)
				}
				data, err = schema.GenerateSchema(msg.NewArgs())
			} else {
				data, err = metadata.Build().JSON()
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "print only the argument schema of one message")
	return cmd
}
