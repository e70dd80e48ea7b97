package services

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/olahol/melody"

	"hms/utils"
)

// Thông báo là best-effort: lỗi gửi mail hay broadcast chỉ ghi log,
// không bao giờ làm fail thao tác chính (đặt phòng, trả phòng...).

func smtpConfig() (host, port, from, password string) {
	host = os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port = os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	from = os.Getenv("SMTP_FROM")
	password = os.Getenv("SMTP_PASSWORD")
	return
}

func sendMail(to, subject, body string) error {
	host, port, from, password := smtpConfig()

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\n\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

// SendReservationEmail gửi mail xác nhận đặt phòng cho khách
func SendReservationEmail(email, code string, total float64, checkInDate, checkOutDate string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Đặt phòng thành công</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>Chúc mừng! Bạn đã đặt phòng thành công.</p>
		<p>Thông tin đặt phòng của bạn như sau:</p>
		<ul>
			<li>Mã đặt phòng: <strong>%s</strong></li>
			<li>Ngày nhận phòng: <strong>%s</strong></li>
			<li>Ngày trả phòng: <strong>%s</strong></li>
			<li>Tổng giá trị tạm tính: <strong>%.2f</strong></li>
		</ul>
		<p>Chúng tôi sẽ gửi cho bạn thông tin chi tiết khi có thay đổi.</p>
		<p>Xin cảm ơn,<br>Nhóm hỗ trợ</p>
	</body>
	</html>`, code, checkInDate, checkOutDate, total)

	return sendMail(email, "Đặt phòng thành công", body)
}

// SendCheckoutEmail gửi hóa đơn cho khách khi trả phòng
func SendCheckoutEmail(email, code, invoiceText string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head><meta charset="UTF-8"><title>Hóa đơn</title></head>
	<body>
		<p>Cảm ơn bạn đã lưu trú. Hóa đơn cho mã đặt phòng <strong>%s</strong>:</p>
		<pre>%s</pre>
	</body>
	</html>`, code, invoiceText)

	return sendMail(email, "Hóa đơn trả phòng "+code, body)
}

// SendContactEmail chuyển tin nhắn liên hệ cho nhân viên
func SendContactEmail(staffEmail, guestName, guestEmail, subject, message string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head><meta charset="UTF-8"><title>Liên hệ mới</title></head>
	<body>
		<p>Có tin nhắn liên hệ mới từ <strong>%s</strong> (%s):</p>
		<p><strong>%s</strong></p>
		<p>%s</p>
	</body>
	</html>`, guestName, guestEmail, subject, message)

	return sendMail(staffEmail, "Liên hệ mới: "+subject, body)
}

// Broadcast gửi thông báo realtime cho dashboard nhân viên
func Broadcast(m *melody.Melody, message string) {
	if m == nil {
		return
	}
	if err := m.Broadcast([]byte(message)); err != nil {
		utils.LogError("Lỗi broadcast websocket: %v", err)
	}
}
