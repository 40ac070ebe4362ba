package services

import (
	"context"
	"sort"
	"sync"

	"github.com/ddanshin/cipherdir/internal/client/models"
	"github.com/ddanshin/cipherdir/internal/cryptox"
	"golang.org/x/sync/errgroup"
)

var fieldOrder = func() map[string]int {
	m := make(map[string]int, len(models.ConfidentialFields))
	for i, f := range models.ConfidentialFields {
		m[f] = i
	}
	return m
}()

// decryptUsers turns a fetched collection of encrypted records into
// plaintext records, preserving element order.
//
// All field decryptions are independent and run concurrently; results are
// joined before any record is considered complete. A failed field keeps the
// empty-string sentinel and is reported in the returned error list; it never
// aborts sibling fields or records. Only context cancellation stops the
// batch, in which case the partial result is discarded.
func decryptUsers(ctx context.Context, key *cryptox.DecryptionKey, records []models.EncryptedUser) ([]models.PlaintextUser, []models.FieldError, error) {

	result := make([]models.PlaintextUser, len(records))

	var mu sync.Mutex
	var fieldErrs []models.FieldError

	g, ctx := errgroup.WithContext(ctx)

	for i, rec := range records {
		fields := []struct {
			name       string
			ciphertext string
			dst        *string
		}{
			{models.FieldID, rec.ID, &result[i].ID},
			{models.FieldName, rec.Name, &result[i].Name},
			{models.FieldEmail, rec.Email, &result[i].Email},
			{models.FieldRole, rec.Role, &result[i].Role},
		}

		for _, f := range fields {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				plaintext, err := cryptox.DecryptField(key, f.ciphertext)
				if err != nil {
					mu.Lock()
					fieldErrs = append(fieldErrs, models.FieldError{Index: i, Field: f.name, Err: err})
					mu.Unlock()
					return nil
				}
				*f.dst = plaintext
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// Goroutine completion order is arbitrary; report errors in record order.
	sort.Slice(fieldErrs, func(a, b int) bool {
		if fieldErrs[a].Index != fieldErrs[b].Index {
			return fieldErrs[a].Index < fieldErrs[b].Index
		}
		return fieldOrder[fieldErrs[a].Field] < fieldOrder[fieldErrs[b].Field]
	})

	return result, fieldErrs, nil
}
