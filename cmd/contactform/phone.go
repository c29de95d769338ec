package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/contactform/internal/errors"
	"github.com/vango-dev/contactform/pkg/contact"
)

func formatPhoneCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "format-phone <input>",
		Short: "Format a phone number as the dialog does while typing",
		Long: `Format a phone number into the +7 (XXX) XXX-XX-XX mask.

Partial input is formatted progressively. With --strict the command fails
unless the result is a complete number.

Examples:
  contactform format-phone 9991234567
  contactform format-phone "+7 999 123"
  contactform format-phone --strict 89991234567`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("E300").WithDetail(fmt.Sprintf("format-phone takes exactly one argument, got %d", len(args)))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			formatted := contact.FormatPhone(strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), formatted)

			if strict {
				if res := contact.Check(contact.FieldPhone, formatted); !res.Valid {
					return errors.New("E301").WithDetail(res.Message)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail unless the number is complete")

	return cmd
}
