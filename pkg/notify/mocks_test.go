package notify_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/travelmail/pkg/attachment"
	"github.com/dmitrymomot/travelmail/pkg/booking"
	"github.com/dmitrymomot/travelmail/pkg/mail"
	"github.com/dmitrymomot/travelmail/pkg/outlet"
	"github.com/dmitrymomot/travelmail/pkg/template"
)

// MockDataStore is a mock implementation of booking.DataStore.
type MockDataStore struct {
	mock.Mock
}

func (m *MockDataStore) Booking(ctx context.Context, id int) (booking.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(booking.Booking), args.Error(1)
}

func (m *MockDataStore) Items(ctx context.Context, id int) ([]booking.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Item), args.Error(1)
}

func (m *MockDataStore) Passengers(ctx context.Context, id int) ([]booking.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Passenger), args.Error(1)
}

func (m *MockDataStore) Faults(ctx context.Context, id int) ([]booking.Fault, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Fault), args.Error(1)
}

func (m *MockDataStore) PNRs(ctx context.Context, id int) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDataStore) MessageSections(ctx context.Context) (template.Sections, error) {
	args := m.Called(ctx)
	return args.Get(0).(template.Sections), args.Error(1)
}

func (m *MockDataStore) ItineraryTemplate(ctx context.Context, id int) (template.Itinerary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(template.Itinerary), args.Error(1)
}

func (m *MockDataStore) AttachmentRules(ctx context.Context) ([]attachment.Rule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]attachment.Rule), args.Error(1)
}

// MockDirectory is a mock implementation of outlet.Directory.
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) Outlet(ctx context.Context, code string) (outlet.Outlet, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(outlet.Outlet), args.Error(1)
}

// MockSender is a mock implementation of mail.Sender that records every
// message it was handed.
type MockSender struct {
	mock.Mock

	Sent []mail.Message
}

func (m *MockSender) Send(ctx context.Context, msg mail.Message) error {
	m.Sent = append(m.Sent, msg)
	args := m.Called(ctx, msg)
	return args.Error(0)
}
