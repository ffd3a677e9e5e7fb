package dispatch

import (
	"fmt"
	"net/url"
	"strings"

	"sanocare/models"
)

// CompletionChecklist is the human attestation an operator walks through
// before closing a visit. It is advisory: the operator affirms one combined
// confirmation, nothing is machine-verified.
var CompletionChecklist = []string{
	"Payment has been collected from the patient or payment confirmation received",
	"The paramedic/doctor has confirmed service completion",
	"All required medical documentation has been completed",
	"Patient has acknowledged the service delivery",
	"Any patient feedback or complaints have been noted",
}

// MapsLink derives a navigation link from GPS when present, otherwise a
// text search on the manual address.
func MapsLink(b *models.Booking) string {
	if gps := b.GPSLocation; gps != nil {
		return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", gps.Lat, gps.Lng)
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(b.ManualAddress)
}

// BuildDispatchMessage renders the responder notice for a freshly
// dispatched booking.
func BuildDispatchMessage(b *models.Booking) string {
	var sb strings.Builder

	sb.WriteString("🚨 *New Assignment from Sanocare*\n\n")
	sb.WriteString(fmt.Sprintf("👤 *Patient:* %s\n", b.PatientName))
	sb.WriteString(fmt.Sprintf("📞 *Phone:* %s\n\n", b.Phone))
	sb.WriteString(fmt.Sprintf("🩺 *Service:* %s\n", models.ServiceLabel(b.ServiceCategory)))
	if b.Amount > 0 {
		sb.WriteString(fmt.Sprintf("💰 *Price:* ₹%d\n", b.Amount))
	}
	sb.WriteString(fmt.Sprintf("\n📍 *Address:* %s\n", b.ManualAddress))
	sb.WriteString(fmt.Sprintf("🗺️ *Maps:* %s\n", MapsLink(b)))
	if b.SpecificAilment != "" {
		sb.WriteString(fmt.Sprintf("\n📝 *Notes:* %s\n", b.SpecificAilment))
	}
	sb.WriteString("\nPlease proceed immediately. Reply when you reach the location.")

	return sb.String()
}
