package services

import (
	"fmt"
	"io"
	"strings"

	"acaodocente/configs"
	"acaodocente/models"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type IMailService interface {
	SendEvaluationEmail(to string, evaluation *models.Evaluation, reportPDF []byte) error
}

type MailService struct {
	config configs.MailConfig
}

func NewMailService(config configs.MailConfig) IMailService {
	return &MailService{config: config}
}

// SendEvaluationEmail envia a notificação de acompanhamento finalizado para
// o docente, com o relatório em PDF anexado quando disponível.
func (s *MailService) SendEvaluationEmail(to string, evaluation *models.Evaluation, reportPDF []byte) error {
	if to == "" {
		return nil
	}

	subject := fmt.Sprintf("Relatório de Acompanhamento Docente - %s",
		evaluation.EvaluationDate.Format("02/01/2006"))

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.DefaultSender)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", s.buildBody(evaluation))

	if len(reportPDF) > 0 {
		attachmentName := fmt.Sprintf("relatorio_%s.pdf",
			strings.ReplaceAll(evaluation.Teacher.Name, " ", "_"))
		message.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(reportPDF)
			return err
		}))
	}

	dialer := s.config.NewDialer()
	if err := dialer.DialAndSend(message); err != nil {
		utils.Log.Error("Erro ao enviar e-mail",
			zap.String("to", to),
			zap.String("server", s.config.Server),
			zap.Error(err),
		)
		return err
	}

	utils.SLog.Infof("E-mail enviado para %s", to)
	return nil
}

func (s *MailService) buildBody(evaluation *models.Evaluation) string {
	observations := evaluation.GeneralObservations
	if observations == "" {
		observations = "Nenhuma observação adicional."
	}

	return fmt.Sprintf(`Prezado(a) %s,

Seu acompanhamento docente foi finalizado com as seguintes informações:

Curso: %s
Data: %s
Período: %s
Avaliador: %s

Planejamento: %.1f%% atendido
Condução da aula: %.1f%% atendido

Observações gerais:
%s

Atenciosamente,
Coordenação Pedagógica
`,
		evaluation.Teacher.Name,
		evaluation.Course.Name,
		evaluation.EvaluationDate.Format("02/01/2006"),
		evaluation.Period,
		evaluation.Evaluator.Name,
		evaluation.PlanningPercentage(),
		evaluation.ClassPercentage(),
		observations,
	)
}

var _ IMailService = (*MailService)(nil)
