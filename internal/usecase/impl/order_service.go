package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "zeemart/internal/delivery/context"
	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/domain/service"
	"zeemart/internal/usecase"
	"zeemart/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.OrderEventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.OrderEventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places an order against a listing. In one transaction it
// decrements physical stock, debits the buyer's wallet for total plus fee,
// holds the seller's share (total minus fee) as pending balance, writes the
// order with escrow HELD, and notifies the seller. The order event is
// published after commit.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	var created *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()
		walletRepo := repoFactory.WalletRepo()

		listing, err := listingRepo.FindByID(ctx, input.ListingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}

		if listing.SellerID == input.BuyerID {
			return domainerrors.ErrOwnListing
		}
		if !listing.Active {
			return domainerrors.ErrListingNotFound
		}
		// Stock is only bounded for physical goods.
		if listing.Type == entity.ListingPhysical && input.Quantity > listing.Stock {
			return domainerrors.ErrInsufficientStock
		}

		totalAmount := listing.Price * float64(input.Quantity)
		serviceFee := entity.ServiceFeeRate * totalAmount
		charge := totalAmount + serviceFee

		buyerWallet, err := walletRepo.FindByUserID(ctx, input.BuyerID)
		if err != nil {
			if errors.Is(err, repository.ErrWalletNotFound) {
				return domainerrors.ErrWalletNotFound
			}

			return errors.Wrap(err, "failed to find buyer wallet")
		}
		if buyerWallet.Balance < charge {
			return domainerrors.ErrInsufficientBalance
		}

		orderNumber, err := util.NewOrderNumber(time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to generate order number")
		}

		if listing.Type == entity.ListingPhysical {
			listing.Stock -= input.Quantity
			if err := listingRepo.Update(ctx, listing); err != nil {
				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		// Debit the buyer and record the payment in the ledger.
		balanceBefore := buyerWallet.Balance
		buyerWallet.Balance -= charge
		if err := walletRepo.Update(ctx, buyerWallet); err != nil {
			return errors.Wrap(err, "failed to debit buyer wallet")
		}

		paymentTx := &entity.Transaction{
			WalletID:      buyerWallet.ID,
			Type:          entity.TxOrderPayment,
			Amount:        -charge,
			Fee:           serviceFee,
			Status:        entity.TxCompleted,
			BalanceBefore: balanceBefore,
			BalanceAfter:  buyerWallet.Balance,
			Reference:     "PAY-" + orderNumber,
			Description:   fmt.Sprintf("Payment for order %s", orderNumber),
		}
		if err := walletRepo.CreateTransaction(ctx, paymentTx); err != nil {
			return errors.Wrap(err, "failed to record order payment")
		}

		// Hold the seller's share in escrow as pending balance.
		sellerWallet, err := walletRepo.FindByUserID(ctx, listing.SellerID)
		if err != nil {
			if errors.Is(err, repository.ErrWalletNotFound) {
				sellerWallet = &entity.Wallet{UserID: listing.SellerID}
				if err := walletRepo.Create(ctx, sellerWallet); err != nil {
					return errors.Wrap(err, "failed to provision seller wallet")
				}
			} else {
				return errors.Wrap(err, "failed to find seller wallet")
			}
		}
		sellerWallet.PendingBalance += totalAmount - serviceFee
		if err := walletRepo.Update(ctx, sellerWallet); err != nil {
			return errors.Wrap(err, "failed to hold seller escrow")
		}

		order := &entity.Order{
			OrderNumber:     orderNumber,
			BuyerID:         input.BuyerID,
			SellerID:        listing.SellerID,
			ListingID:       listing.ID,
			Quantity:        input.Quantity,
			UnitPrice:       listing.Price,
			TotalAmount:     totalAmount,
			ServiceFee:      serviceFee,
			Status:          entity.OrderPending,
			EscrowStatus:    entity.EscrowHeld,
			ShippingAddress: input.ShippingAddress,
			Requirements:    input.Requirements,
		}
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		notification := &entity.Notification{
			UserID:  listing.SellerID,
			Type:    entity.NotificationOrderCreated,
			Title:   "New order received",
			Content: fmt.Sprintf("Order %s for %q (x%d)", orderNumber, listing.Title, input.Quantity),
			Link:    "/orders/" + order.ID.String(),
		}
		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to notify seller")
		}

		created = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed",
			slog.Any("buyerID", input.BuyerID),
			slog.Any("listingID", input.ListingID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.publishEvent(ctx, created)

	srv.log(ctx).Info("Order created",
		slog.String("orderNumber", created.OrderNumber),
		slog.Float64("totalAmount", created.TotalAmount),
	)

	return created, nil
}

// GetOrder returns the order if the caller is its buyer, its seller, or an
// admin.
func (srv *orderService) GetOrder(ctx context.Context, callerID uuid.UUID, callerRole entity.Role, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if callerRole != entity.RoleAdmin && order.PartyOf(callerID) == entity.PartyNone {
		return nil, domainerrors.ErrOrderAccessDenied
	}

	return order, nil
}

// ListBuyerOrders pages through the caller's purchases.
func (srv *orderService) ListBuyerOrders(ctx context.Context, input *usecase.ListOrdersInput) (*usecase.OrderPage, error) {
	return srv.listOrders(ctx, input, true)
}

// ListSellerOrders pages through the caller's sales.
func (srv *orderService) ListSellerOrders(ctx context.Context, input *usecase.ListOrdersInput) (*usecase.OrderPage, error) {
	return srv.listOrders(ctx, input, false)
}

func (srv *orderService) listOrders(ctx context.Context, input *usecase.ListOrdersInput, asBuyer bool) (*usecase.OrderPage, error) {
	opts := repository.ListOrdersOptions{
		Limit:  normalizeLimit(input.Limit),
		Offset: max(input.Offset, 0),
	}
	if asBuyer {
		opts.BuyerID = &input.UserID
	} else {
		opts.SellerID = &input.UserID
	}

	if input.Status != "" {
		status := entity.OrderStatus(strings.ToUpper(input.Status))
		if !status.Valid() {
			return nil, domainerrors.ErrInvalidOrderStatus
		}
		opts.Status = &status
	}

	items, total, err := srv.orderRepo.List(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{Items: items, Total: total}, nil
}

// UpdateStatus applies a status transition dispatched on the caller's
// relationship to the order. Buyers may only confirm COMPLETED; any other
// buyer request is refused without a write and without a notification.
// Sellers and admins may set any known status. The counterparty is notified
// only for transitions that were actually applied.
func (srv *orderService) UpdateStatus(ctx context.Context, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	status := entity.OrderStatus(strings.ToUpper(strings.TrimSpace(input.Status)))
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		party := order.PartyOf(input.CallerID)
		isAdmin := input.CallerRole == entity.RoleAdmin

		var notifyUserID uuid.UUID
		switch {
		case isAdmin:
			notifyUserID = order.BuyerID
		case party == entity.PartySeller:
			notifyUserID = order.BuyerID
		case party == entity.PartyBuyer:
			if status != entity.OrderCompleted {
				return domainerrors.ErrBuyerStatusNotAllowed
			}
			notifyUserID = order.SellerID
		default:
			return domainerrors.ErrOrderAccessDenied
		}

		now := time.Now()
		order.Status = status

		switch status {
		case entity.OrderShipped:
			order.ShippedAt = &now
			if input.TrackingNumber != "" {
				order.TrackingNumber = input.TrackingNumber
			}
		case entity.OrderDelivered:
			order.DeliveredAt = &now
		case entity.OrderInProgress:
			if len(input.DeliveryFiles) > 0 {
				order.DeliveryFiles = input.DeliveryFiles
				order.DeliveryNotes = input.DeliveryNotes
			}
		case entity.OrderDisputed:
			order.DisputedAt = &now
		case entity.OrderCompleted:
			order.CompletedAt = &now
			// Held funds move only on the buyer's confirmation or an
			// admin resolution. A seller marking their own order
			// COMPLETED records the status but never releases escrow.
			if party == entity.PartyBuyer || isAdmin {
				if err := srv.releaseEscrow(ctx, repoFactory, order); err != nil {
					return err
				}
			}
		}

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}

		notification := &entity.Notification{
			UserID:  notifyUserID,
			Type:    entity.NotificationOrderStatus,
			Title:   "Order status updated",
			Content: fmt.Sprintf("Order %s is now %s", order.OrderNumber, status),
			Link:    "/orders/" + order.ID.String(),
		}
		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to notify counterparty")
		}

		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, updated)

	srv.log(ctx).Info("Order status updated",
		slog.String("orderNumber", updated.OrderNumber),
		slog.String("status", string(updated.Status)),
	)

	return updated, nil
}

// releaseEscrow moves the held seller share from pending to spendable
// balance, records the ESCROW_RELEASE ledger entry, and credits the buyer's
// lifetime spend. Runs inside the caller's transaction.
func (srv *orderService) releaseEscrow(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	if order.EscrowStatus != entity.EscrowHeld {
		return nil
	}

	walletRepo := repoFactory.WalletRepo()
	sellerShare := order.TotalAmount - order.ServiceFee

	sellerWallet, err := walletRepo.FindByUserID(ctx, order.SellerID)
	if err != nil {
		return errors.Wrap(err, "failed to find seller wallet for release")
	}

	balanceBefore := sellerWallet.Balance
	sellerWallet.PendingBalance -= sellerShare
	sellerWallet.Balance += sellerShare
	sellerWallet.TotalEarned += sellerShare
	if err := walletRepo.Update(ctx, sellerWallet); err != nil {
		return errors.Wrap(err, "failed to release escrow to seller")
	}

	releaseTx := &entity.Transaction{
		WalletID:      sellerWallet.ID,
		Type:          entity.TxEscrowRelease,
		Amount:        sellerShare,
		Fee:           order.ServiceFee,
		Status:        entity.TxCompleted,
		BalanceBefore: balanceBefore,
		BalanceAfter:  sellerWallet.Balance,
		Reference:     "REL-" + order.OrderNumber,
		Description:   fmt.Sprintf("Escrow release for order %s", order.OrderNumber),
	}
	if err := walletRepo.CreateTransaction(ctx, releaseTx); err != nil {
		return errors.Wrap(err, "failed to record escrow release")
	}

	buyerWallet, err := walletRepo.FindByUserID(ctx, order.BuyerID)
	if err != nil {
		return errors.Wrap(err, "failed to find buyer wallet for release")
	}
	buyerWallet.TotalSpent += order.TotalAmount + order.ServiceFee
	if err := walletRepo.Update(ctx, buyerWallet); err != nil {
		return errors.Wrap(err, "failed to credit buyer lifetime spend")
	}

	order.EscrowStatus = entity.EscrowReleased

	return nil
}

// Dispute marks an order DISPUTED with the submitted reason and notifies
// the counterparty.
func (srv *orderService) Dispute(ctx context.Context, input *usecase.DisputeOrderInput) (*entity.Order, error) {
	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		party := order.PartyOf(input.CallerID)
		if party == entity.PartyNone {
			return domainerrors.ErrOrderAccessDenied
		}

		now := time.Now()
		order.Status = entity.OrderDisputed
		order.DisputeReason = input.Reason
		order.DisputedAt = &now

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}

		counterparty := order.SellerID
		if party == entity.PartySeller {
			counterparty = order.BuyerID
		}

		notification := &entity.Notification{
			UserID:  counterparty,
			Type:    entity.NotificationOrderStatus,
			Title:   "Order disputed",
			Content: fmt.Sprintf("Order %s was disputed: %s", order.OrderNumber, input.Reason),
			Link:    "/orders/" + order.ID.String(),
		}
		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to notify counterparty")
		}

		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, updated)

	return updated, nil
}

// publishEvent pushes the order event to the broker. Publishing is best
// effort; a broker outage must not fail the committed request.
func (srv *orderService) publishEvent(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		BuyerID:     order.BuyerID,
		SellerID:    order.SellerID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("orderNumber", order.OrderNumber),
			slog.Any("error", err),
		)
	}
}
