package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a file through the chunked uploader",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "failed to open file")
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return errors.Wrap(err, "failed to stat file")
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		desc, err := client.Uploads.Upload(cmd.Context(), f, info.Size(), filepath.Base(args[0]), func(fraction float64) {
			fmt.Printf("\r%3.0f%%", fraction*100)
		})
		fmt.Println()
		if err != nil {
			return err
		}

		return printJSON(desc)
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
