package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendContactEmail(ctx context.Context, toEmail, sellerName, buyerName, itemTitle string, conversationID string) error {
	args := m.Called(ctx, toEmail, sellerName, buyerName, itemTitle, conversationID)
	return args.Error(0)
}
