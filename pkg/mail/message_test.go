package mail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/travelmail/pkg/mail"
)

func TestMessageValidate(t *testing.T) {
	t.Parallel()

	valid := mail.Message{
		To:       []string{"user@example.com"},
		From:     "noreply@example.com",
		Subject:  "Booking confirmation",
		BodyHTML: "<p>hi</p>",
	}

	tests := []struct {
		name    string
		mutate  func(m *mail.Message)
		wantErr bool
	}{
		{
			name:   "valid message",
			mutate: func(m *mail.Message) {},
		},
		{
			name:   "valid with bcc",
			mutate: func(m *mail.Message) { m.Bcc = []string{"audit@example.com"} },
		},
		{
			name:    "no recipients",
			mutate:  func(m *mail.Message) { m.To = nil },
			wantErr: true,
		},
		{
			name:    "malformed recipient",
			mutate:  func(m *mail.Message) { m.To = []string{"not-an-address"} },
			wantErr: true,
		},
		{
			name:    "malformed from",
			mutate:  func(m *mail.Message) { m.From = "@example.com" },
			wantErr: true,
		},
		{
			name:    "malformed bcc",
			mutate:  func(m *mail.Message) { m.Bcc = []string{"bad bcc"} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := valid
			tt.mutate(&msg)

			err := msg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, mail.ErrInvalidMessage)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestIsAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		addr string
		want bool
	}{
		{"user@example.com", true},
		{"  user@example.com  ", true},
		{"first.last+tag@sub.example.co.nz", true},
		{"", false},
		{"   ", false},
		{"no-at-sign", false},
		{"Display Name <user@example.com>", false},
		{"user@", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mail.IsAddress(tt.addr))
		})
	}
}

func TestSplitRecipients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "single address",
			in:   "a@example.com",
			want: []string{"a@example.com"},
		},
		{
			name: "semicolon separated with padding",
			in:   " a@example.com ; b@example.com;c@example.com ",
			want: []string{"a@example.com", "b@example.com", "c@example.com"},
		},
		{
			name: "empty entries dropped",
			in:   ";;a@example.com;;",
			want: []string{"a@example.com"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mail.SplitRecipients(tt.in))
		})
	}
}

func TestStripBrandToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		file  string
		brand string
		want  string
	}{
		{
			name:  "marker removed",
			file:  "Brand-MixNZTerms.pdf",
			brand: "MixNZ",
			want:  "Terms.pdf",
		},
		{
			name:  "no marker passes through",
			file:  "Terms.pdf",
			brand: "MixNZ",
			want:  "Terms.pdf",
		},
		{
			name:  "different brand marker kept",
			file:  "Brand-MixAUTerms.pdf",
			brand: "MixNZ",
			want:  "Brand-MixAUTerms.pdf",
		},
		{
			name: "empty brand leaves name alone",
			file: "Brand-Terms.pdf",
			want: "Brand-Terms.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mail.StripBrandToken(tt.file, tt.brand))
		})
	}
}
