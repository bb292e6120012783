package discounts

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/angelmondragon/threadline-backend/pkg/db"
	"github.com/angelmondragon/threadline-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/threadline-backend/pkg/errors"
)

const (
	codePrefix    = "SAVE"
	codeSuffixLen = 6
	issueAttempts = 5
)

var codeCharset = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// IssueCode mints a new discount code through the provided repository. The
// code column is unique; generation retries on collision rather than trusting
// the random suffix alone.
func IssueCode(ctx context.Context, repo Repository, percentage int, orderID *int64) (*models.DiscountCode, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "discounts repository unavailable")
	}
	if percentage <= 0 || percentage > 100 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount percentage out of range")
	}

	var lastErr error
	for attempt := 0; attempt < issueAttempts; attempt++ {
		code, err := generateCodeString()
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate code")
		}

		record, err := repo.Create(ctx, &models.DiscountCode{
			Code:       code,
			Percentage: percentage,
			Used:       false,
			OrderID:    orderID,
		})
		if err == nil {
			return record, nil
		}
		if !db.IsUniqueViolation(err, "code") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist discount code")
		}
		lastErr = err
	}

	return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, lastErr,
		fmt.Sprintf("exhausted %d attempts generating a unique code", issueAttempts))
}

func generateCodeString() (string, error) {
	buf := make([]byte, codeSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	code := []byte(codePrefix)
	for _, b := range buf {
		code = append(code, codeCharset[int(b)%len(codeCharset)])
	}
	return string(code), nil
}
