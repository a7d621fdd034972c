package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	sdk "github.com/nftmart-dev/nftmart-contract-sdk"
)

func newEncodeCmd() *cobra.Command {
	var validate bool

	cmd := &cobra.Command{
		Use:   "encode <message> [json-args]",
		Short: "Print the call data of a message as hex",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var msgArgs sdk.Args
			if len(args) == 2 {
				dec := json.NewDecoder(strings.NewReader(args[1]))
				dec.UseNumber()
				if err := dec.Decode(&msgArgs); err != nil {
					return fmt.Errorf("invalid json args: %w", err)
				}
			}
			data, err := sdk.BuildCall(args[0], msgArgs, sdk.WithValidation(validate))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "0x%s\n", hex.EncodeToString(data))
			return err
		},
	}
	cmd.Flags().BoolVar(&validate, "validate", true, "validate arguments before encoding")
	return cmd
}
