package services

import (
	"context"
	"errors"
	"time"

	"github.com/yogamaster/yoga_master/models"
	"github.com/yogamaster/yoga_master/stores"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrDuplicateTransaction rejects a transaction reference that was
	// already recorded by an earlier checkout.
	ErrDuplicateTransaction = errors.New("transaction already recorded")
	// ErrClassNotFound means at least one purchased class id did not resolve.
	ErrClassNotFound = errors.New("one or more classes not found")
)

// TxnRunner executes fn as a single atomic unit against the document store.
// database.Mongo implements it with a mongo multi-document transaction.
type TxnRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CheckoutInput struct {
	UserEmail     string
	TransactionID string
	Amount        float64
	ClassIDs      []primitive.ObjectID
	// SingleClassID distinguishes a single-item cart checkout: when set, only
	// that class+email cart entry is removed instead of every purchased one.
	SingleClassID *primitive.ObjectID
}

type CheckoutService interface {
	Checkout(ctx context.Context, in CheckoutInput) (*models.CheckoutResult, error)
}

type checkoutService struct {
	classes     stores.ClassStore
	cart        stores.CartStore
	payments    stores.PaymentStore
	enrollments stores.EnrollmentStore
	runner      TxnRunner
}

func NewCheckoutService(classes stores.ClassStore, cart stores.CartStore, payments stores.PaymentStore, enrollments stores.EnrollmentStore, runner TxnRunner) CheckoutService {
	return &checkoutService{
		classes:     classes,
		cart:        cart,
		payments:    payments,
		enrollments: enrollments,
		runner:      runner,
	}
}

// Checkout converts a confirmed payment into an enrollment: it bumps the
// class totals, records the enrollment, clears the purchased cart entries and
// appends the payment audit record. The four writes run inside one mongo
// transaction; either all apply or none do. The per-step outcomes are still
// reported individually in the result.
func (s *checkoutService) Checkout(ctx context.Context, in CheckoutInput) (*models.CheckoutResult, error) {
	exists, err := s.payments.ExistsByTransaction(ctx, in.TransactionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateTransaction
	}

	classes, err := s.classes.FindByIDs(ctx, in.ClassIDs)
	if err != nil {
		return nil, err
	}
	if len(classes) != len(in.ClassIDs) {
		return nil, ErrClassNotFound
	}

	totalEnrolled, availableSeats := broadcastTotals(classes)

	var result models.CheckoutResult
	err = s.runner.WithTransaction(ctx, func(ctx context.Context) error {
		updated, err := s.classes.ApplyEnrollmentTotals(ctx, in.ClassIDs, totalEnrolled, availableSeats)
		if err != nil {
			return err
		}
		result.UpdatedResult = *updated

		enrollmentID, err := s.enrollments.Insert(ctx, &models.Enrollment{
			UserEmail:     in.UserEmail,
			ClassesID:     in.ClassIDs,
			TransactionID: in.TransactionID,
		})
		if err != nil {
			return err
		}
		result.EnrolledResult = models.InsertOutcome{InsertedID: enrollmentID.Hex()}

		var deleted int64
		if in.SingleClassID != nil {
			deleted, err = s.cart.DeleteByClassAndEmail(ctx, *in.SingleClassID, in.UserEmail)
		} else {
			deleted, err = s.cart.DeleteByClassesAndEmail(ctx, in.ClassIDs, in.UserEmail)
		}
		if err != nil {
			return err
		}
		result.DeletedResult = models.DeleteOutcome{DeletedCount: deleted}

		paymentID, err := s.payments.Insert(ctx, &models.Payment{
			UserEmail:     in.UserEmail,
			Amount:        in.Amount,
			TransactionID: in.TransactionID,
			ClassesID:     in.ClassIDs,
			Date:          time.Now(),
		})
		if err != nil {
			return err
		}
		result.PaymentResult = models.InsertOutcome{InsertedID: paymentID.Hex()}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// broadcastTotals computes one pair of totals across every purchased class;
// the same pair is then written to each of them. Enrollment becomes the sum
// of all current counts plus one for the checkout event, seats the sum minus
// one. The delta is per checkout, not per class.
func broadcastTotals(classes []models.Class) (totalEnrolled, availableSeats int) {
	for _, class := range classes {
		totalEnrolled += class.TotalEnrolled
		availableSeats += class.AvailableSeats
	}
	return totalEnrolled + 1, availableSeats - 1
}
