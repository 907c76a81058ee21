package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"food-ordering-api/models"
	"food-ordering-api/policy"
	"food-ordering-api/repository"
)

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)
	expiryPattern     = regexp.MustCompile(`^([0-9]{2})/([0-9]{2})$`)
)

// PaymentMethodInput carries the writable payment-method fields. On update, nil
// pointers leave the stored value untouched.
type PaymentMethodInput struct {
	CardNumber *string `json:"card_number"`
	CardHolder *string `json:"card_holder"`
	ExpiryDate *string `json:"expiry_date"`
	IsDefault  *bool   `json:"is_default"`
}

// PaymentService manages stored payment methods. Writes are admin-only; each
// method belongs to the actor that created it.
type PaymentService struct {
	users   repository.UserRepository
	methods repository.PaymentMethodRepository
}

func NewPaymentService(users repository.UserRepository, methods repository.PaymentMethodRepository) *PaymentService {
	return &PaymentService{users: users, methods: methods}
}

func (s *PaymentService) actor(ctx context.Context, actorID string) (*models.User, error) {
	actor, err := s.users.ByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return actor, nil
}

// List returns the actor's own payment methods. Non-admins can never create any,
// so their list is empty.
func (s *PaymentService) List(ctx context.Context, actorID string) ([]models.PaymentMethod, error) {
	actor, err := s.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.methods.ListByUser(ctx, actor.ID)
}

// Add validates and stores a new payment method under the actor's id.
func (s *PaymentService) Add(ctx context.Context, actorID, cardNumber, cardHolder, expiryDate string, isDefault bool) (*models.PaymentMethod, error) {
	actor, err := s.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManagePaymentMethods(actor) {
		return nil, fmt.Errorf("%w: only administrators can manage payment methods", ErrAccessDenied)
	}

	if err := validateCardNumber(cardNumber); err != nil {
		return nil, err
	}
	if err := validateExpiryDate(expiryDate); err != nil {
		return nil, err
	}

	method := &models.PaymentMethod{
		UserID:     actor.ID,
		CardNumber: cardNumber,
		CardHolder: cardHolder,
		ExpiryDate: expiryDate,
		IsDefault:  isDefault,
	}
	if err := s.methods.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// Update applies the supplied fields to an existing method, re-validating any
// changed card number or expiry date.
func (s *PaymentService) Update(ctx context.Context, actorID, id string, input PaymentMethodInput) (*models.PaymentMethod, error) {
	actor, err := s.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManagePaymentMethods(actor) {
		return nil, fmt.Errorf("%w: only administrators can manage payment methods", ErrAccessDenied)
	}

	method, err := s.methods.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: payment method", ErrNotFound)
		}
		return nil, err
	}

	if input.CardNumber != nil {
		if err := validateCardNumber(*input.CardNumber); err != nil {
			return nil, err
		}
		method.CardNumber = *input.CardNumber
	}
	if input.ExpiryDate != nil {
		if err := validateExpiryDate(*input.ExpiryDate); err != nil {
			return nil, err
		}
		method.ExpiryDate = *input.ExpiryDate
	}
	if input.CardHolder != nil {
		method.CardHolder = *input.CardHolder
	}
	if input.IsDefault != nil {
		method.IsDefault = *input.IsDefault
	}

	if err := s.methods.Update(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// Delete removes a payment method by id.
func (s *PaymentService) Delete(ctx context.Context, actorID, id string) error {
	actor, err := s.actor(ctx, actorID)
	if err != nil {
		return err
	}
	if !policy.CanManagePaymentMethods(actor) {
		return fmt.Errorf("%w: only administrators can manage payment methods", ErrAccessDenied)
	}

	if err := s.methods.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return fmt.Errorf("%w: payment method", ErrNotFound)
		}
		return err
	}
	return nil
}

func validateCardNumber(cardNumber string) error {
	if !cardNumberPattern.MatchString(cardNumber) {
		return fmt.Errorf("%w: card number must be exactly 16 digits", ErrInvalidInput)
	}
	return nil
}

// validateExpiryDate accepts MM/YY with a month in [1,12] whose last instant is
// not in the past, so a card stays valid through its expiry month.
func validateExpiryDate(expiryDate string) error {
	match := expiryPattern.FindStringSubmatch(expiryDate)
	if match == nil {
		return fmt.Errorf("%w: expiry date must be in MM/YY format", ErrInvalidInput)
	}
	month, _ := strconv.Atoi(match[1])
	year, _ := strconv.Atoi(match[2])
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: expiry month must be between 01 and 12", ErrInvalidInput)
	}

	endOfMonth := time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC).
		Add(-time.Nanosecond)
	if endOfMonth.Before(time.Now()) {
		return fmt.Errorf("%w: card has expired", ErrInvalidInput)
	}
	return nil
}
