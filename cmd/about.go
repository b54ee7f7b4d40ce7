package main

import (
	"fmt"
	"github.com/Imm0bilize/heartleaves-core-service/internal/presenter"
	"github.com/spf13/cobra"
)

var (
	aboutStyle string
	aboutWidth int
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show reference ranges and information about the model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := presenter.RenderAbout(aboutStyle, aboutWidth)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	aboutCmd.Flags().StringVar(&aboutStyle, "style", "", "glamour style (dark, light, notty); detected when empty")
	aboutCmd.Flags().IntVar(&aboutWidth, "width", 80, "word wrap width")
}
