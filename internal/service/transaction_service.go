package service

import (
	"context"
	"fmt"

	"github.com/hance08/dompet/internal/model"
	"github.com/rs/zerolog"
)

// MaxAnalysisPages caps how many history pages Analyze walks.
const MaxAnalysisPages = 20

type TransactionService struct {
	backend    Backend
	session    SessionStore
	wallet     *WalletService
	classifier *Classifier
	log        zerolog.Logger
}

func NewTransactionService(backend Backend, sess SessionStore, wallet *WalletService, classifier *Classifier, log zerolog.Logger) *TransactionService {
	return &TransactionService{
		backend:    backend,
		session:    sess,
		wallet:     wallet,
		classifier: classifier,
		log:        log,
	}
}

func (ts *TransactionService) Classifier() *Classifier {
	return ts.classifier
}

// Viewer is the id transactions are classified against. It is empty when no
// one is signed in.
func (ts *TransactionService) Viewer() model.ID {
	id, _ := ts.session.ViewerID()
	return id
}

// List fetches one page of the viewer's history.
func (ts *TransactionService) List(ctx context.Context, filter FilterState) (*model.TransactionPage, error) {
	if err := filter.Validate(); err != nil {
		return nil, invalid("filter", "%s", err.Error())
	}

	walletID, ok := ts.session.ViewerID()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	page, err := ts.backend.ListTransactions(ctx, BuildQuery(filter, walletID))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return page, nil
}

// ListAll walks pages of filter until the last one or maxPages.
func (ts *TransactionService) ListAll(ctx context.Context, filter FilterState, maxPages int) ([]model.Transaction, error) {
	filter = filter.WithPage(1)

	var all []model.Transaction
	for {
		page, err := ts.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Content...)

		if filter.Page >= page.TotalPages || len(page.Content) == 0 {
			break
		}
		if maxPages > 0 && filter.Page >= maxPages {
			ts.log.Warn().Int("pages", maxPages).Int("total_pages", page.TotalPages).Msg("History truncated")
			break
		}
		filter = filter.WithPage(filter.Page + 1)
	}
	return all, nil
}

// Analyze aggregates the viewer's history into income and expense series.
func (ts *TransactionService) Analyze(ctx context.Context, filter FilterState) (AggregatedSeries, error) {
	filter = filter.WithPageSize(PageSizes[len(PageSizes)-1])

	txs, err := ts.ListAll(ctx, filter, MaxAnalysisPages)
	if err != nil {
		return AggregatedSeries{}, err
	}
	return Aggregate(ts.classifier, txs, ts.Viewer()), nil
}

func (ts *TransactionService) Classify(tx model.Transaction) Classification {
	return ts.classifier.Classify(tx, ts.Viewer())
}
