package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions are the fields of a new timeline entry.
type EntryOptions struct {
	Date        string
	Title       string
	Description string
	Image       string
	Interactive bool
}

// EntryFlags lists the flags AddEntryArgs registers, in prompt order.
var EntryFlags = []string{"date", "title", "description", "image"}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Date of the entry, example: --date="2024-01-05".`)
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title of the entry.")
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Optional longer description.")
	cmd.Flags().StringVar(&o.Image, "image", "",
		"Optional http(s) image URL.")
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		"Prompt for any field not given as a flag.")
}
