package utils

import "strings"

// WhatsAppAddress converts a phone number into Twilio's WhatsApp addressing
// format ("whatsapp:+5491100000000"). Numbers already carrying the prefix
// pass through unchanged; numbers without a leading "+" get one, assuming
// E.164 digits.
func WhatsAppAddress(number string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	if !strings.HasPrefix(number, "+") {
		number = "+" + number
	}
	return "whatsapp:" + number
}
