package v1

import (
	"time"
)

// QueueStatus is the state of a queue. Jobs submitted to a PAUSED queue wait until it is ACTIVE
// again.
type QueueStatus string

const (
	QueueStatusActive QueueStatus = "ACTIVE"
	QueueStatusPaused QueueStatus = "PAUSED"
)

// PricingPlan selects on-demand or reserved billing for a queue.
type PricingPlan string

const (
	PricingPlanOnDemand PricingPlan = "ON_DEMAND"
	PricingPlanReserved PricingPlan = "RESERVED"
)

type Commitment string

const (
	CommitmentOneYear Commitment = "ONE_YEAR"
)

// RenewalType decides what happens to a reservation plan at the end of its commitment.
type RenewalType string

const (
	RenewalTypeAutoRenew RenewalType = "AUTO_RENEW"
	RenewalTypeExpire    RenewalType = "EXPIRE"
)

type ReservationPlanStatus string

const (
	ReservationPlanStatusActive  ReservationPlanStatus = "ACTIVE"
	ReservationPlanStatusExpired ReservationPlanStatus = "EXPIRED"
)

// Type tells whether a queue, preset or job template is provided by the service or by the account.
type Type string

const (
	TypeSystem Type = "SYSTEM"
	TypeCustom Type = "CUSTOM"
)

type QueueListBy string

const (
	QueueListByName         QueueListBy = "NAME"
	QueueListByCreationDate QueueListBy = "CREATION_DATE"
)

// Order is the sort direction of list operations.
type Order string

const (
	OrderAscending  Order = "ASCENDING"
	OrderDescending Order = "DESCENDING"
)

// Queue is a resource jobs are submitted to. Jobs in a queue are processed in parallel up to the
// queue's slot count.
type Queue struct {
	Arn         *string      `json:"arn,omitempty"`
	CreatedAt   *time.Time   `json:"createdAt,omitempty"`
	Description *string      `json:"description,omitempty"`
	LastUpdated *time.Time   `json:"lastUpdated,omitempty"`
	Name        *string      `json:"name,omitempty"`
	PricingPlan *PricingPlan `json:"pricingPlan,omitempty"`

	// ProgressingJobsCount is the number of jobs currently being transcoded from this queue.
	ProgressingJobsCount *int64 `json:"progressingJobsCount,omitempty"`

	ReservationPlan    *ReservationPlan `json:"reservationPlan,omitempty"`
	Status             *QueueStatus     `json:"status,omitempty"`
	SubmittedJobsCount *int64           `json:"submittedJobsCount,omitempty"`
	Type               *Type            `json:"type,omitempty"`
}

// ReservationPlan describes the reservation of a RESERVED queue.
type ReservationPlan struct {
	Commitment    *Commitment            `json:"commitment,omitempty"`
	ExpiresAt     *time.Time             `json:"expiresAt,omitempty"`
	PurchasedAt   *time.Time             `json:"purchasedAt,omitempty"`
	RenewalType   *RenewalType           `json:"renewalType,omitempty"`
	ReservedSlots *int64                 `json:"reservedSlots,omitempty"`
	Status        *ReservationPlanStatus `json:"status,omitempty"`
}

// ReservationPlanSettings is the requested reservation when creating or updating a RESERVED queue.
type ReservationPlanSettings struct {
	// Commitment is required by the service.
	Commitment *Commitment `json:"commitment,omitempty"`

	// RenewalType is required by the service.
	RenewalType *RenewalType `json:"renewalType,omitempty"`

	// ReservedSlots is required by the service. Each slot transcodes one job at a time.
	ReservedSlots *int64 `json:"reservedSlots,omitempty"`
}

type CreateQueueRequest struct {
	RequestBase `json:"-"`

	Description *string `json:"description,omitempty"`

	// Name is required by the service.
	Name *string `json:"name,omitempty"`

	PricingPlan *PricingPlan `json:"pricingPlan,omitempty"`

	// ReservationPlanSettings is only meaningful when PricingPlan is RESERVED.
	ReservationPlanSettings *ReservationPlanSettings `json:"reservationPlanSettings,omitempty"`

	Status *QueueStatus      `json:"status,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

type CreateQueueResult struct {
	ResponseMetadata `json:"-"`

	Queue *Queue `json:"queue,omitempty"`
}

type GetQueueRequest struct {
	RequestBase `json:"-"`

	Name *string `json:"name,omitempty"`
}

type GetQueueResult struct {
	ResponseMetadata `json:"-"`

	Queue *Queue `json:"queue,omitempty"`
}

type UpdateQueueRequest struct {
	RequestBase `json:"-"`

	Description             *string                  `json:"description,omitempty"`
	Name                    *string                  `json:"name,omitempty"`
	ReservationPlanSettings *ReservationPlanSettings `json:"reservationPlanSettings,omitempty"`
	Status                  *QueueStatus             `json:"status,omitempty"`
}

type UpdateQueueResult struct {
	ResponseMetadata `json:"-"`

	Queue *Queue `json:"queue,omitempty"`
}

type DeleteQueueRequest struct {
	RequestBase `json:"-"`

	Name *string `json:"name,omitempty"`
}

type DeleteQueueResult struct {
	ResponseMetadata `json:"-"`
}

// ListQueuesRequest pages through the queues of the account. Pass the NextToken of a result back to
// fetch the next page.
type ListQueuesRequest struct {
	RequestBase `json:"-"`

	ListBy *QueueListBy `json:"listBy,omitempty"`

	// MaxResults ranges from 1 to 20 on the service side.
	MaxResults *int64 `json:"maxResults,omitempty"`

	NextToken *string `json:"nextToken,omitempty"`
	Order     *Order  `json:"order,omitempty"`
}

type ListQueuesResult struct {
	ResponseMetadata `json:"-"`

	NextToken *string  `json:"nextToken,omitempty"`
	Queues    []*Queue `json:"queues,omitempty"`
}
