package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/awfaabdulkader/interior-architect-backend/internal/email"
	"github.com/awfaabdulkader/interior-architect-backend/internal/logger"
	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
	"github.com/awfaabdulkader/interior-architect-backend/internal/repositories"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services/dto"
	"github.com/awfaabdulkader/interior-architect-backend/pkg/apperrors"
)

type ContactService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateContactRequest) (*dto.ContactResponse, error)
	List(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type contactService struct {
	contactRepo repositories.ContactRepository
	mailer      email.Provider
	notifyEmail string
}

func NewContactService(contactRepo repositories.ContactRepository, mailer email.Provider, notifyEmail string) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		mailer:      mailer,
		notifyEmail: notifyEmail,
	}
}

func (s *contactService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateContactRequest) (*dto.ContactResponse, error) {
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Notification is best-effort; the message row already exists.
	s.notify(ctx, message)

	resp := toContactResponse(message)
	return &resp, nil
}

func (s *contactService) List(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error) {
	messages, total, err := s.contactRepo.FindPage(db, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ContactResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, toContactResponse(&messages[i]))
	}

	return &dto.PaginatedResponse{
		Data:     responses,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (s *contactService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	err := s.contactRepo.Delete(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *contactService) notify(ctx context.Context, message *models.ContactMessage) {
	if s.notifyEmail == "" {
		return
	}

	subject := message.Subject
	if subject == "" {
		subject = "New contact message"
	}

	err := s.mailer.Send(&email.Email{
		To:      []string{s.notifyEmail},
		Subject: fmt.Sprintf("[portfolio] %s", subject),
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s", message.Name, message.Email, message.Message),
	})
	if err != nil {
		logger.CtxWarn(ctx, "failed to send contact notification", "error", err.Error())
	}
}

func toContactResponse(m *models.ContactMessage) dto.ContactResponse {
	return dto.ContactResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
