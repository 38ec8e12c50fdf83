package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/clashcrash/board_go_server/config"
)

type Service struct {
	cfg *config.EmailConfig
}

func NewService(cfg *config.EmailConfig) *Service {
	return &Service{cfg: cfg}
}

// SendReportNotice 向版主发送举报通知
func (s *Service) SendReportNotice(to, boardTitle, cmtPreview, reasonTitle, reporterNick string) error {
	subject := "新的评论举报 - 留言板"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #dc2626;">收到新的评论举报</h2>
        <p>帖子：%s</p>
        <p>被举报内容：</p>
        <div style="background-color: #f3f4f6; padding: 15px; margin: 20px 0;">
            %s
        </div>
        <p>举报事由：%s</p>
        <p>举报人：%s</p>
        <p>请尽快登录后台处理。</p>
        <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
        <p style="color: #6b7280; font-size: 12px;">此邮件由系统自动发送，请勿回复。</p>
    </div>
</body>
</html>
`, boardTitle, cmtPreview, reasonTitle, reporterNick)

	return s.sendHTML(to, subject, body)
}

func (s *Service) sendHTML(to, subject, body string) error {
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	headers := []string{
		fmt.Sprintf("From: %s", s.cfg.From),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}
