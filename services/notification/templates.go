package notification

import (
	"fmt"

	"swimly/models"
)

func confirmationHTML(booking models.Booking, slot models.Timeslot) string {
	when := slot.Start.Format("Monday, 2 January 2006 at 15:04")
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; padding: 24px;">
  <h2>Hi %s,</h2>
  <p>Your swimming class has been booked and <strong>confirmed</strong>.</p>
  <ul>
    <li><strong>Date:</strong> %s</li>
    <li><strong>Location:</strong> %s</li>
    <li><strong>Payment reference:</strong> %s</li>
  </ul>
  <p>See you at the pool!</p>
</div>`, booking.Name, when, slot.Location, booking.Reference)
}

func adminCopyHTML(booking models.Booking, slot models.Timeslot) string {
	return fmt.Sprintf(
		"<p>%s just booked a class on <b>%s</b> at <b>%s</b>.</p><p>Payment reference: %s</p>",
		booking.Name, slot.Start.Format("2006-01-02 15:04"), slot.Location, booking.Reference)
}
