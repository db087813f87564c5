package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppAddress(t *testing.T) {
	assert.Equal(t, "whatsapp:+5491122334455", WhatsAppAddress("+5491122334455"))
	assert.Equal(t, "whatsapp:+5491122334455", WhatsAppAddress("5491122334455"))
	assert.Equal(t, "whatsapp:+5491122334455", WhatsAppAddress(" +5491122334455 "))
	assert.Equal(t, "whatsapp:+5491122334455", WhatsAppAddress("whatsapp:+5491122334455"))
}
