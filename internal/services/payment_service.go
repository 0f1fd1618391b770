package services

import (
	"errors"
	"strings"

	"github.com/skilllinker/skilllinker/internal/apperrors"
	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/skilllinker/skilllinker/internal/types"
	"gorm.io/gorm"
)

type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

type CreatePaymentInput struct {
	PayeeID       uint    `json:"payee_id"`
	JobID         *uint   `json:"job_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

func (s *PaymentService) Create(payer models.User, input CreatePaymentInput) (*models.Payment, error) {
	var details []apperrors.FieldError

	if input.PayeeID == 0 {
		details = append(details, apperrors.Required("payee_id"))
	}

	if input.Amount <= 0 {
		details = append(details, apperrors.Field("amount", "amount must be greater than zero"))
	}

	if strings.TrimSpace(input.PaymentMethod) == "" {
		details = append(details, apperrors.Required("payment_method"))
	}

	if len(details) > 0 {
		return nil, apperrors.Validation(details...)
	}

	// Only assessors initiate payments.
	if payer.UserType != types.RoleAssessor {
		return nil, apperrors.ErrForbidden
	}

	var payee models.User

	if err := s.db.First(&payee, input.PayeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	payment := models.Payment{
		PayerID:       payer.ID,
		PayeeID:       input.PayeeID,
		JobID:         input.JobID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Status:        types.PaymentStatusPending,
	}

	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

func (s *PaymentService) List() ([]models.Payment, error) {
	var payments []models.Payment

	if err := s.db.Preload("Payer").Preload("Payee").Find(&payments).Error; err != nil {
		return nil, err
	}

	return payments, nil
}

func (s *PaymentService) Get(id uint) (*models.Payment, error) {
	var payment models.Payment

	if err := s.db.Preload("Payer").Preload("Payee").First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &payment, nil
}

func (s *PaymentService) UpdateStatus(id uint, status string) (*models.Payment, error) {
	if !types.IsValidPaymentStatus(status) {
		return nil, apperrors.Validation(apperrors.Field("status", "status must be one of pending, completed, refunded"))
	}

	payment, err := s.Get(id)

	if err != nil {
		return nil, err
	}

	if err := s.db.Model(payment).Update("status", status).Error; err != nil {
		return nil, err
	}

	payment.Status = status

	return payment, nil
}

func (s *PaymentService) Delete(id uint) error {
	payment, err := s.Get(id)

	if err != nil {
		return err
	}

	return s.db.Delete(payment).Error
}
