package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/ddanshin/cipherdir/internal/client/models"
)

// unreadableMark replaces a field whose decryption failed. The field keeps
// its row so the rest of the record stays visible.
const unreadableMark = "<unreadable>"

func renderUsers(users []models.PlaintextUser, fieldErrs []models.FieldError) error {
	return renderUsersTo(os.Stdout, users, fieldErrs)
}

func renderUsersTo(w io.Writer, users []models.PlaintextUser, fieldErrs []models.FieldError) error {

	failed := make(map[int]map[string]bool)
	for _, fe := range fieldErrs {
		if failed[fe.Index] == nil {
			failed[fe.Index] = make(map[string]bool)
		}
		failed[fe.Index][fe.Field] = true
	}

	cell := func(i int, field, value string) string {
		if failed[i][field] {
			return unreadableMark
		}
		return value
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
	for i, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			cell(i, models.FieldID, u.ID),
			cell(i, models.FieldName, u.Name),
			cell(i, models.FieldEmail, u.Email),
			cell(i, models.FieldRole, u.Role),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "%d record(s)\n", len(users))

	if len(fieldErrs) > 0 {
		fmt.Fprintf(w, "%d field(s) could not be decrypted:\n", len(fieldErrs))
		for _, fe := range fieldErrs {
			fmt.Fprintf(w, "  %s\n", fe.Error())
		}
	}

	return nil
}
