package main

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/contactform/internal/errors"
	"github.com/vango-dev/contactform/pkg/contact"
)

func checkCmd() *cobra.Command {
	values := make(map[contact.Field]*string, len(contact.Fields))

	cmd := &cobra.Command{
		Use:   "check [field=value...]",
		Short: "Validate form values without a browser",
		Long: `Validate contact form values with the same rules the dialog uses.

Values come from flags or from field=value arguments; arguments win over
flags. The phone is formatted the way the dialog formats it while typing.
Each field is reported on its own line. The command exits with status 1
when any field is invalid.

Examples:
  contactform check name=Анна email=anna@example.com
  contactform check --name="Анна" --email=anna@example.com \
    --phone=9991234567 --topic=support --message="Здравствуйте, вопрос по заказу"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := make(map[contact.Field]string, len(contact.Fields))
			for _, f := range contact.Fields {
				form[f] = *values[f]
			}
			if err := parseAssignments(args, form); err != nil {
				return err
			}

			reg := contact.NewMemoryRegistry()
			for _, f := range contact.Fields {
				v := form[f]
				if f == contact.FieldPhone && v != "" {
					v = contact.FormatPhone(v)
				}
				reg.Set(f, v)
			}

			v := contact.New(reg)
			valid := v.ValidateForm()

			out := cmd.OutOrStdout()
			state := v.State()
			for _, f := range contact.Fields {
				if msg := state.Get(f); msg != "" {
					failure(out, "%-8s %s", f, msg)
					continue
				}
				success(out, "%-8s %s", f, reg.Values()[f])
			}

			if !valid {
				first, _ := v.FirstErrored()
				return errors.New("E301").WithDetail("first invalid field: " + first.String())
			}
			return nil
		},
	}

	for _, f := range contact.Fields {
		values[f] = cmd.Flags().String(f.String(), "", "Value of the "+f.String()+" field")
	}

	return cmd
}

// parseAssignments applies field=value arguments to form.
func parseAssignments(args []string, form map[contact.Field]string) error {
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return errors.New("E300").WithDetail(fmt.Sprintf("expected field=value, got %q", arg))
		}
		f, err := contact.ParseField(name)
		if stderrors.Is(err, contact.ErrUnknownField) {
			return errors.New("E302").WithDetail(fmt.Sprintf("field %q is not part of the form", name)).Wrap(err)
		}
		if err != nil {
			return err
		}
		form[f] = value
	}
	return nil
}
