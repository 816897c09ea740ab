package market

import (
	"context"

	"sui-market-lab/internal/mist"
	"sui-market-lab/internal/outcome"
	"sui-market-lab/internal/txbuild"
)

// ListForSale validates and submits a list-for-sale operation for an
// owned object. displayPrice is the user's price input in display
// units; it is converted with exact arithmetic and rejected locally
// when it does not parse as a positive number.
func (s *Service) ListForSale(ctx context.Context, ctrl *outcome.Controller, owner string, item *Item, displayPrice string) error {
	if err := ctrl.Begin(txbuild.ActionList); err != nil {
		return err
	}
	if owner == "" {
		return s.rejectLocal(ctrl, txbuild.ActionList, "wallet_absent", ErrWalletAbsent)
	}

	priceMist, err := mist.ToMist(displayPrice)
	if err != nil {
		return s.rejectLocal(ctrl, txbuild.ActionList, "invalid_price", err)
	}

	op, err := txbuild.List(s.cfg.PackageID, s.cfg.MarketplaceID, item.Object.ObjectID, item.Object.Type, priceMist)
	if err != nil {
		return s.rejectLocal(ctrl, txbuild.ActionList, "invalid_price", err)
	}

	return s.submit(ctx, ctrl, op)
}

// BuyListing validates and submits a buy for a resolved listing.
// manualType, when non-empty, bypasses type resolution entirely; any
// non-empty string is accepted and correctness is deferred to the
// execution collaborator's rejection.
func (s *Service) BuyListing(ctx context.Context, ctrl *outcome.Controller, owner string, listing *Listing, manualType string) error {
	if err := ctrl.Begin(txbuild.ActionBuy); err != nil {
		return err
	}
	if owner == "" {
		return s.rejectLocal(ctrl, txbuild.ActionBuy, "wallet_absent", ErrWalletAbsent)
	}

	typeTag := manualType
	if typeTag == "" {
		var ok bool
		typeTag, ok = listing.AssetType()
		if !ok {
			return s.rejectLocal(ctrl, txbuild.ActionBuy, "type_unresolved", txbuild.ErrTypeUnresolved)
		}
	}

	op, err := txbuild.Buy(s.cfg.PackageID, s.cfg.MarketplaceID, listing.ListingID, typeTag, listing.PriceMist)
	if err != nil {
		return s.rejectLocal(ctrl, txbuild.ActionBuy, "type_unresolved", err)
	}

	return s.submit(ctx, ctrl, op)
}

// BurnObject submits the destruction of an owned object.
func (s *Service) BurnObject(ctx context.Context, ctrl *outcome.Controller, owner, objectID string) error {
	if err := ctrl.Begin(txbuild.ActionBurn); err != nil {
		return err
	}
	if owner == "" {
		return s.rejectLocal(ctrl, txbuild.ActionBurn, "wallet_absent", ErrWalletAbsent)
	}

	return s.submit(ctx, ctrl, txbuild.Burn(objectID))
}

// MintNew submits a mint against the collection's mint entry point.
func (s *Service) MintNew(ctx context.Context, ctrl *outcome.Controller, owner, name, dna, imageURL string) error {
	if err := ctrl.Begin(txbuild.ActionMint); err != nil {
		return err
	}
	if owner == "" {
		return s.rejectLocal(ctrl, txbuild.ActionMint, "wallet_absent", ErrWalletAbsent)
	}

	return s.submit(ctx, ctrl, txbuild.Mint(s.cfg.PackageID, name, dna, imageURL))
}

// rejectLocal terminates a submission on a local validation failure,
// before the operation reaches the execution collaborator.
func (s *Service) rejectLocal(ctrl *outcome.Controller, action txbuild.Action, kind string, err error) error {
	if s.metrics != nil {
		s.metrics.ValidationFailures.WithLabelValues(kind).Inc()
		s.metrics.OperationOutcomes.WithLabelValues(string(action), "rejected_local").Inc()
	}
	s.logger.Printf("%s rejected before submission: %v", action, err)
	ctrl.Fail(err.Error())
	return err
}

// submit hands a built operation to the execution collaborator and
// folds its result into the controller.
func (s *Service) submit(ctx context.Context, ctrl *outcome.Controller, op *txbuild.Operation) error {
	if s.metrics != nil {
		s.metrics.OperationsSubmitted.WithLabelValues(string(op.Action)).Inc()
	}

	digest, err := s.exec.Submit(ctx, op)
	ctrl.Complete(digest, err)

	if s.metrics != nil {
		result := "success"
		if err != nil {
			result = "failure"
		}
		s.metrics.OperationOutcomes.WithLabelValues(string(op.Action), result).Inc()
	}
	if err != nil {
		s.logger.Printf("%s rejected by network: %v", op.Action, err)
		return err
	}
	s.logger.Printf("%s confirmed: %s", op.Action, outcome.FormatDigest(digest))
	return nil
}
