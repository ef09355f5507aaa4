package postgres

import (
	"context"
	"encoding/json"

	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid buyer, seller, or listing reference")
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "duplicate order number")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// Update persists changes to an order's mutable fields.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":          orderM.Status,
			"escrow_status":   orderM.EscrowStatus,
			"tracking_number": orderM.TrackingNumber,
			"shipped_at":      orderM.ShippedAt,
			"delivered_at":    orderM.DeliveredAt,
			"completed_at":    orderM.CompletedAt,
			"dispute_reason":  orderM.DisputeReason,
			"disputed_at":     orderM.DisputedAt,
			"delivery_files":  orderM.DeliveryFiles,
			"delivery_notes":  orderM.DeliveryNotes,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// List retrieves a page of orders matching the filter, newest first, plus
// the total count of matches.
func (repo *orderRepository) List(ctx context.Context, opts repository.ListOrdersOptions) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if opts.BuyerID != nil {
		query = query.Where("buyer_id = ?", *opts.BuyerID)
	}
	if opts.SellerID != nil {
		query = query.Where("seller_id = ?", *opts.SellerID)
	}
	if opts.Status != nil {
		query = query.Where("status = ?", string(*opts.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	query = query.Order("created_at DESC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, total, nil
}

// Count returns the total number of orders.
func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return total, nil
}

// CountByStatus returns the number of orders currently in the given status.
func (repo *orderRepository) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("status = ?", string(status)).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by status")
	}

	return total, nil
}

// Totals aggregates order money columns for the admin dashboard.
func (repo *orderRepository) Totals(ctx context.Context) (*repository.MarketplaceTotals, error) {
	var totals repository.MarketplaceTotals

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0) AS gross_volume, COALESCE(SUM(service_fee), 0) AS fee_revenue").
		Scan(&totals).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate order totals")
	}

	return &totals, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	var shippingAddress *entity.ShippingAddress
	if data.ShippingAddress != "" {
		shippingAddress = &entity.ShippingAddress{}
		if err := json.Unmarshal([]byte(data.ShippingAddress), shippingAddress); err != nil {
			return nil, errors.Wrap(err, "failed to decode shipping address")
		}
	}

	var deliveryFiles []entity.DeliveryFile
	if data.DeliveryFiles != "" {
		if err := json.Unmarshal([]byte(data.DeliveryFiles), &deliveryFiles); err != nil {
			return nil, errors.Wrap(err, "failed to decode delivery files")
		}
	}

	return &entity.Order{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		BuyerID:         data.BuyerID,
		SellerID:        data.SellerID,
		ListingID:       data.ListingID,
		Quantity:        data.Quantity,
		UnitPrice:       data.UnitPrice,
		TotalAmount:     data.TotalAmount,
		ServiceFee:      data.ServiceFee,
		Status:          entity.OrderStatus(data.Status),
		EscrowStatus:    entity.EscrowStatus(data.EscrowStatus),
		TrackingNumber:  data.TrackingNumber,
		ShippedAt:       data.ShippedAt,
		DeliveredAt:     data.DeliveredAt,
		CompletedAt:     data.CompletedAt,
		DisputeReason:   data.DisputeReason,
		DisputedAt:      data.DisputedAt,
		ShippingAddress: shippingAddress,
		Requirements:    data.Requirements,
		DeliveryFiles:   deliveryFiles,
		DeliveryNotes:   data.DeliveryNotes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	shippingAddress := ""
	if data.ShippingAddress != nil {
		encoded, err := json.Marshal(data.ShippingAddress)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode shipping address")
		}
		shippingAddress = string(encoded)
	}

	deliveryFiles := ""
	if len(data.DeliveryFiles) > 0 {
		encoded, err := json.Marshal(data.DeliveryFiles)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode delivery files")
		}
		deliveryFiles = string(encoded)
	}

	return &model.OrderModel{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		BuyerID:         data.BuyerID,
		SellerID:        data.SellerID,
		ListingID:       data.ListingID,
		Quantity:        data.Quantity,
		UnitPrice:       data.UnitPrice,
		TotalAmount:     data.TotalAmount,
		ServiceFee:      data.ServiceFee,
		Status:          string(data.Status),
		EscrowStatus:    string(data.EscrowStatus),
		TrackingNumber:  data.TrackingNumber,
		ShippedAt:       data.ShippedAt,
		DeliveredAt:     data.DeliveredAt,
		CompletedAt:     data.CompletedAt,
		DisputeReason:   data.DisputeReason,
		DisputedAt:      data.DisputedAt,
		ShippingAddress: shippingAddress,
		Requirements:    data.Requirements,
		DeliveryFiles:   deliveryFiles,
		DeliveryNotes:   data.DeliveryNotes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}
