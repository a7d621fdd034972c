//go:build !wasip1

package log

// emit writes the rendered line to the configured writer.
func (h *DebugHandler) emit(line []byte) error {
	_, err := h.opts.out.Write(line)
	return err
}
