package notify

import (
	"bytes"
	"html/template"
)

const CheckoutReminderSubject = "Action Required: Logout Not Recorded Today in PeopleDesk"

var checkoutReminderTmpl = template.Must(template.New("checkout_reminder").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; line-height: 1.6;">
<h2 style="color: #dc2626; border-bottom: 2px solid #fee2e2; padding-bottom: 10px;">Action Required: Logout Not Recorded</h2>
<p>Hello <b>{{.Name}}</b>,</p>
<p>Today, it has been noticed that your logout was not properly recorded in PeopleDesk.</p>
<p>Please note that regular login and logout are mandatory for attendance and salary processing. Missing logout entries may lead to salary deduction as per company policy.</p>
<p>Kindly ensure proper logout in PeopleDesk every day by <b>{{.Deadline}}</b> to avoid such issues in the future. If you are still working, you may ignore this message until your shift ends.</p>
<p>If you believe this is an error or require any clarification, please contact the HR team immediately.</p>
<p>Thank you for your cooperation.</p>
<br/>
<p style="margin-bottom: 0;">Regards,</p>
<p style="margin-top: 0; font-weight: bold; color: #1e3a8a;">HR Team</p>
</div>`))

// CheckoutReminder menyusun email untuk karyawan yang belum check-out hari ini.
func CheckoutReminder(to, name string) (Message, error) {
	var buf bytes.Buffer
	err := checkoutReminderTmpl.Execute(&buf, struct {
		Name     string
		Deadline string
	}{Name: name, Deadline: "11:59 PM"})
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: CheckoutReminderSubject, HTML: buf.String()}, nil
}
