package worker

// receipt_worker.go
// Processes receipt jobs from QueueReceipt after a payment settles.
// Generates the PDF receipt and hands delivery off to the email queue.
// Best-effort by contract: a receipt failure never unsettles a payment.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/infra"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReceiptJobPayload is the job envelope sent to QueueReceipt.
type ReceiptJobPayload struct {
	PaymentID string `json:"payment_id"`
}

// ReceiptWorker turns a settled payment into a PDF receipt and an
// email job.
type ReceiptWorker struct {
	payments       repository.PaymentRepository
	dispatcher     *Dispatcher
	rdb            *redis.Client
	pdfStoragePath string
}

func NewReceiptWorker(
	payments repository.PaymentRepository,
	dispatcher *Dispatcher,
	rdb *redis.Client,
	pdfStoragePath string,
) *ReceiptWorker {
	return &ReceiptWorker{
		payments:       payments,
		dispatcher:     dispatcher,
		rdb:            rdb,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single receipt job:
//  1. Parse ReceiptJobPayload from the job envelope
//  2. Fetch the payment document
//  3. Generate the PDF (max 3 attempts with backoff)
//  4. Enqueue the email job with the PDF attached
//
// Exhausted retries land the job in the dead letter queue.
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return
	}

	oid, err := primitive.ObjectIDFromHex(payload.PaymentID)
	if err != nil {
		log.Error().Str("payment_id", payload.PaymentID).Msg("receipt_worker: invalid payment id")
		return
	}

	payment, err := w.payments.FindByID(ctx, oid)
	if err != nil {
		log.Error().Err(err).Str("payment_id", payload.PaymentID).Msg("receipt_worker: payment not found")
		return
	}

	var pdfPath string
	genErr := withRetry(ctx, 3, func(attempt int) error {
		var err error
		pdfPath, err = infra.GenerateReceiptPDF(payment, w.pdfStoragePath)
		if err != nil {
			log.Warn().Int("attempt", attempt).Err(err).
				Str("payment_id", payload.PaymentID).
				Msg("receipt_worker: pdf generation failed")
		}
		return err
	})
	if genErr != nil {
		SendToDLQ(ctx, w.rdb, QueueReceipt, "receipt", raw, genErr.Error(), 3)
		return
	}

	emailJob := EmailJobPayload{
		ToEmail: payment.Email,
		Subject: "Your Bistro Boss receipt",
		Body:    fmt.Sprintf("Thanks for your order! Your payment of $%.2f has been received.", payment.Price),
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		log.Error().Err(err).Str("payment_id", payload.PaymentID).
			Msg("receipt_worker: failed to enqueue email job")
		return
	}

	log.Info().Str("payment_id", payload.PaymentID).Str("pdf", pdfPath).
		Msg("receipt_worker: receipt generated")
}
