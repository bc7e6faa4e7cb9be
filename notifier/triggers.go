package notifier

import (
	"fmt"
	"log"

	"academia/config"
	courseModels "academia/models/course"
)

// HTML wrapper shared by every outgoing email
func emailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A40; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A40; line-height: 1.6; }
			.content h2 { color: #1A1A40; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #46B5A4; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>ACADEMIA</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Academia. Todos los derechos reservados.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

func dispatch(to []string, subject, body string) {
	go func() {
		if err := Email.Send(to, subject, body); err != nil {
			log.Printf("Error sending email %q to %v: %v", subject, to, err)
		}
	}()
}

// SendWelcomeEmail greets a freshly signed-up user
func SendWelcomeEmail(email, name string) {
	subject := "Bienvenido a Academia"
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Tu cuenta ha sido creada exitosamente. Ya puedes explorar nuestro catalogo de cursos e inscribirte.</p>
		<p>Si tienes alguna duda, escribenos en cualquier momento.</p>
	`, name)

	dispatch([]string{email}, subject, emailTemplate("Bienvenido!", body))
}

// SendRegistrationEmails fans out the live-course registration
// notifications: a confirmation to the registrant and a detail alert to
// the academy staff.
func SendRegistrationEmails(course *courseModels.Course, reg *courseModels.LiveCourseRegistration) {
	subject := "Registro confirmado: " + course.Title
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Tu registro para <strong>%s</strong> fue recibido exitosamente.</p>
		<div class="info-box">
			<strong>Codigo de referencia:</strong> %s<br>
			<strong>Modalidad:</strong> %s
		</div>
		<p>Pronto recibiras los detalles de inicio por este mismo medio.</p>
	`, reg.FirstName, course.Title, reg.ReferenceCode, reg.PreferredModality)

	dispatch([]string{reg.Email}, subject, emailTemplate("Registro Confirmado", body))

	if config.AppConfig.StaffEmail == "" {
		return
	}

	guardian := "N/A"
	if reg.GuardianFirstName != "" {
		guardian = fmt.Sprintf("%s %s (%s)", reg.GuardianFirstName, reg.GuardianLastName, reg.GuardianPhoneNumber)
	}

	staffSubject := fmt.Sprintf("Nuevo registro: %s", course.Title)
	staffBody := fmt.Sprintf(`
		<p>Nuevo registro para <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Nombre:</strong> %s %s<br>
			<strong>Email:</strong> %s<br>
			<strong>Telefono:</strong> %s<br>
			<strong>Edad:</strong> %d<br>
			<strong>Apoderado:</strong> %s<br>
			<strong>Modalidad:</strong> %s<br>
			<strong>Laptop propia:</strong> %t
		</div>
	`, course.Title, reg.FirstName, reg.LastName, reg.Email, reg.PhoneNumber, reg.Age, guardian,
		reg.PreferredModality, reg.HasLaptop)

	dispatch([]string{config.AppConfig.StaffEmail}, staffSubject, emailTemplate("Nuevo Registro", staffBody))
}

// AppendRegistrationRow pushes the registration into the course's
// spreadsheet. Best-effort: failures are logged and swallowed.
func AppendRegistrationRow(course *courseModels.Course, reg *courseModels.LiveCourseRegistration) {
	go func() {
		if err := Sheets.AppendRegistration(course, reg); err != nil {
			log.Printf("Error appending registration %s to spreadsheet: %v", reg.ReferenceCode, err)
		}
	}()
}

// SendContactAlert forwards a contact form submission to the staff inbox
func SendContactAlert(name, email, subject, message string) {
	if config.AppConfig.StaffEmail == "" {
		return
	}

	body := fmt.Sprintf(`
		<p><strong>%s</strong> (%s) escribio a traves del formulario de contacto:</p>
		<div class="info-box">
			<strong>Asunto:</strong> %s<br><br>
			%s
		</div>
	`, name, email, subject, message)

	dispatch([]string{config.AppConfig.StaffEmail}, "Nuevo mensaje de contacto", emailTemplate("Mensaje de Contacto", body))
}

// SendLiveReminderEmail reminds a registrant that their course starts soon
func SendLiveReminderEmail(course *courseModels.Course, reg *courseModels.LiveCourseRegistration, startDate string) {
	subject := "Recordatorio: " + course.Title + " inicia pronto"
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Te recordamos que <strong>%s</strong> inicia el <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Codigo de referencia:</strong> %s<br>
			<strong>Modalidad:</strong> %s
		</div>
	`, reg.FirstName, course.Title, startDate, reg.ReferenceCode, reg.PreferredModality)

	dispatch([]string{reg.Email}, subject, emailTemplate("Tu curso inicia pronto", body))
}
