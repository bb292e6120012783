package discounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/threadline-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/threadline-backend/pkg/errors"
	"gorm.io/gorm"
)

// Validation messages shown directly to shoppers.
const (
	MsgInvalidCode = "Invalid or already used discount code."
)

// Validation is the outcome of a pure code check. It never mutates state;
// redemption happens separately during checkout.
type Validation struct {
	Valid      bool   `json:"valid"`
	Percentage int    `json:"percentage"`
	Message    string `json:"message"`
}

// CodeDTO is the registry entry shape returned to API collaborators.
type CodeDTO struct {
	Code       string    `json:"code"`
	Percentage int       `json:"percentage"`
	Used       bool      `json:"used"`
	OrderID    *int64    `json:"order_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Service exposes the discount registry.
type Service interface {
	Validate(ctx context.Context, code string) (*Validation, error)
	Issue(ctx context.Context, percentage int, orderID *int64) (*models.DiscountCode, error)
	ListCodes(ctx context.Context) ([]CodeDTO, error)
}

type service struct {
	repo Repository
}

// NewService builds a discounts service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("discounts repository required")
	}
	return &service{repo: repo}, nil
}

// Normalize uppercases and trims a user-supplied code. Codes are stored and
// compared in this canonical form.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks whether an unused code exists for the given string. A miss
// is an answer, not an error.
func (s *service) Validate(ctx context.Context, code string) (*Validation, error) {
	normalized := Normalize(code)
	if normalized == "" {
		return &Validation{Valid: false, Message: MsgInvalidCode}, nil
	}

	record, err := s.repo.FindUnusedByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Validation{Valid: false, Message: MsgInvalidCode}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up discount code")
	}

	return &Validation{
		Valid:      true,
		Percentage: record.Percentage,
		Message:    fmt.Sprintf("Discount code valid! %d%% off your order.", record.Percentage),
	}, nil
}

// Issue mints a new code outside of any checkout transaction.
func (s *service) Issue(ctx context.Context, percentage int, orderID *int64) (*models.DiscountCode, error) {
	return IssueCode(ctx, s.repo, percentage, orderID)
}

// ListCodes returns every issued code, used or not, oldest first.
func (s *service) ListCodes(ctx context.Context) ([]CodeDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list discount codes")
	}

	dtos := make([]CodeDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, NewCodeDTO(&records[i]))
	}
	return dtos, nil
}

// NewCodeDTO maps a registry row into its API shape.
func NewCodeDTO(record *models.DiscountCode) CodeDTO {
	return CodeDTO{
		Code:       record.Code,
		Percentage: record.Percentage,
		Used:       record.Used,
		OrderID:    record.OrderID,
		CreatedAt:  record.CreatedAt,
	}
}
