package worker

// cotizacion_worker.go
// Processes quotation jobs from QueueCotizacion: renders the PDF document
// and, if the client has an email, chains an email job with the attachment.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/VexyyCat/ChromaBags/internal/infra"
	"github.com/VexyyCat/ChromaBags/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CotizacionJobPayload is the job envelope sent to QueueCotizacion.
type CotizacionJobPayload struct {
	CotizacionID string `json:"cotizacion_id"`
	ClienteEmail string `json:"cliente_email,omitempty"`
}

type CotizacionWorker struct {
	cotizaciones   repository.CotizacionRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
}

func NewCotizacionWorker(
	cotizaciones repository.CotizacionRepository,
	dispatcher *Dispatcher,
	pdfStoragePath string,
) *CotizacionWorker {
	return &CotizacionWorker{
		cotizaciones:   cotizaciones,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single quotation job:
//  1. Parse CotizacionJobPayload from the job envelope
//  2. Fetch the Cotizacion (with items and client) from DB
//  3. Generate the PDF document
//  4. Enqueue an email job when a client email is known
func (w *CotizacionWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload CotizacionJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("cotizacion_worker: invalid payload")
		return
	}

	cotID, err := uuid.Parse(payload.CotizacionID)
	if err != nil {
		log.Error().Str("cotizacion_id", payload.CotizacionID).Msg("cotizacion_worker: invalid cotizacion_id")
		return
	}

	cot, err := w.cotizaciones.ObtenerPorID(ctx, cotID)
	if err != nil {
		log.Error().Err(err).Str("cotizacion_id", payload.CotizacionID).Msg("cotizacion_worker: cotizacion not found")
		return
	}

	pdfPath, err := infra.GenerateCotizacionPDF(cot, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Str("cotizacion_id", payload.CotizacionID).Msg("cotizacion_worker: PDF generation failed")
		return
	}
	log.Info().Str("cotizacion_id", payload.CotizacionID).Str("pdf", pdfPath).Msg("cotizacion_worker: PDF generated")

	toEmail := payload.ClienteEmail
	if toEmail == "" && cot.Cliente != nil {
		toEmail = cot.Cliente.Email
	}
	if toEmail == "" || w.dispatcher == nil {
		return
	}

	emailPayload := EmailJobPayload{
		ToEmail: toEmail,
		Subject: "Su cotizacion de ChromaBags",
		Body: fmt.Sprintf(
			"Hola,\n\nAdjuntamos la cotizacion solicitada por un total estimado de $%s.\n\nChromaBags",
			cot.TotalEstimado.StringFixed(2)),
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailPayload); err != nil {
		log.Error().Err(err).Str("to", toEmail).Msg("cotizacion_worker: failed to enqueue email job")
	}
}
