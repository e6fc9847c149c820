package v1

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusSubmitted   JobStatus = "SUBMITTED"
	JobStatusProgressing JobStatus = "PROGRESSING"
	JobStatusComplete    JobStatus = "COMPLETE"
	JobStatusCanceled    JobStatus = "CANCELED"
	JobStatusError       JobStatus = "ERROR"
)

// JobPhase is the step a PROGRESSING job is in.
type JobPhase string

const (
	JobPhaseProbing     JobPhase = "PROBING"
	JobPhaseTranscoding JobPhase = "TRANSCODING"
	JobPhaseUploading   JobPhase = "UPLOADING"
)

// AccelerationMode controls accelerated transcoding. PREFERRED falls back to normal transcoding
// when the job is not eligible.
type AccelerationMode string

const (
	AccelerationModeDisabled  AccelerationMode = "DISABLED"
	AccelerationModeEnabled   AccelerationMode = "ENABLED"
	AccelerationModePreferred AccelerationMode = "PREFERRED"
)

type AccelerationStatus string

const (
	AccelerationStatusNotApplicable  AccelerationStatus = "NOT_APPLICABLE"
	AccelerationStatusInProgress     AccelerationStatus = "IN_PROGRESS"
	AccelerationStatusAccelerated    AccelerationStatus = "ACCELERATED"
	AccelerationStatusNotAccelerated AccelerationStatus = "NOT_ACCELERATED"
)

// BillingTagsSource chooses which resource's tags appear on the job's billing records.
type BillingTagsSource string

const (
	BillingTagsSourceQueue       BillingTagsSource = "QUEUE"
	BillingTagsSourcePreset      BillingTagsSource = "PRESET"
	BillingTagsSourceJobTemplate BillingTagsSource = "JOB_TEMPLATE"
	BillingTagsSourceJob         BillingTagsSource = "JOB"
)

type SimulateReservedQueue string

const (
	SimulateReservedQueueDisabled SimulateReservedQueue = "DISABLED"
	SimulateReservedQueueEnabled  SimulateReservedQueue = "ENABLED"
)

// StatusUpdateInterval is how often the service publishes STATUS_UPDATE events while a job runs.
type StatusUpdateInterval string

const (
	StatusUpdateIntervalSeconds10  StatusUpdateInterval = "SECONDS_10"
	StatusUpdateIntervalSeconds12  StatusUpdateInterval = "SECONDS_12"
	StatusUpdateIntervalSeconds15  StatusUpdateInterval = "SECONDS_15"
	StatusUpdateIntervalSeconds20  StatusUpdateInterval = "SECONDS_20"
	StatusUpdateIntervalSeconds30  StatusUpdateInterval = "SECONDS_30"
	StatusUpdateIntervalSeconds60  StatusUpdateInterval = "SECONDS_60"
	StatusUpdateIntervalSeconds120 StatusUpdateInterval = "SECONDS_120"
	StatusUpdateIntervalSeconds180 StatusUpdateInterval = "SECONDS_180"
	StatusUpdateIntervalSeconds240 StatusUpdateInterval = "SECONDS_240"
	StatusUpdateIntervalSeconds300 StatusUpdateInterval = "SECONDS_300"
	StatusUpdateIntervalSeconds360 StatusUpdateInterval = "SECONDS_360"
	StatusUpdateIntervalSeconds420 StatusUpdateInterval = "SECONDS_420"
	StatusUpdateIntervalSeconds480 StatusUpdateInterval = "SECONDS_480"
	StatusUpdateIntervalSeconds540 StatusUpdateInterval = "SECONDS_540"
	StatusUpdateIntervalSeconds600 StatusUpdateInterval = "SECONDS_600"
)

type AccelerationSettings struct {
	// Mode is required by the service.
	Mode *AccelerationMode `json:"mode,omitempty"`
}

// HopDestination moves a job to another queue after it waited WaitMinutes in its current one.
type HopDestination struct {
	Priority    *int64  `json:"priority,omitempty"`
	Queue       *string `json:"queue,omitempty"`
	WaitMinutes *int64  `json:"waitMinutes,omitempty"`
}

type Timing struct {
	FinishTime *time.Time `json:"finishTime,omitempty"`
	StartTime  *time.Time `json:"startTime,omitempty"`
	SubmitTime *time.Time `json:"submitTime,omitempty"`
}

// QueueTransition records a hop of a job from one queue to another.
type QueueTransition struct {
	DestinationQueue *string    `json:"destinationQueue,omitempty"`
	SourceQueue      *string    `json:"sourceQueue,omitempty"`
	Timestamp        *time.Time `json:"timestamp,omitempty"`
}

type JobMessages struct {
	Info    []string `json:"info,omitempty"`
	Warning []string `json:"warning,omitempty"`
}

type OutputGroupDetail struct {
	OutputDetails []*OutputDetail `json:"outputDetails,omitempty"`
}

type OutputDetail struct {
	DurationInMs *int64       `json:"durationInMs,omitempty"`
	VideoDetails *VideoDetail `json:"videoDetails,omitempty"`
}

type VideoDetail struct {
	HeightInPx *int64 `json:"heightInPx,omitempty"`
	WidthInPx  *int64 `json:"widthInPx,omitempty"`
}

// Job is a single transcoding run as reported by the service.
type Job struct {
	AccelerationSettings *AccelerationSettings `json:"accelerationSettings,omitempty"`
	AccelerationStatus   *AccelerationStatus   `json:"accelerationStatus,omitempty"`
	Arn                  *string               `json:"arn,omitempty"`
	BillingTagsSource    *BillingTagsSource    `json:"billingTagsSource,omitempty"`
	ClientRequestToken   *string               `json:"clientRequestToken,omitempty"`
	CreatedAt            *time.Time            `json:"createdAt,omitempty"`
	CurrentPhase         *JobPhase             `json:"currentPhase,omitempty"`
	ErrorCode            *int64                `json:"errorCode,omitempty"`
	ErrorMessage         *string               `json:"errorMessage,omitempty"`
	HopDestinations      []*HopDestination     `json:"hopDestinations,omitempty"`
	Id                   *string               `json:"id,omitempty"`

	// JobPercentComplete is only reported while the job is PROGRESSING and StatusUpdateInterval is
	// set.
	JobPercentComplete *int64 `json:"jobPercentComplete,omitempty"`

	JobTemplate           *string                `json:"jobTemplate,omitempty"`
	Messages              *JobMessages           `json:"messages,omitempty"`
	OutputGroupDetails    []*OutputGroupDetail   `json:"outputGroupDetails,omitempty"`
	Priority              *int64                 `json:"priority,omitempty"`
	Queue                 *string                `json:"queue,omitempty"`
	QueueTransitions      []*QueueTransition     `json:"queueTransitions,omitempty"`
	RetryCount            *int64                 `json:"retryCount,omitempty"`
	Role                  *string                `json:"role,omitempty"`
	Settings              *JobSettings           `json:"settings,omitempty"`
	SimulateReservedQueue *SimulateReservedQueue `json:"simulateReservedQueue,omitempty"`
	Status                *JobStatus             `json:"status,omitempty"`
	StatusUpdateInterval  *StatusUpdateInterval  `json:"statusUpdateInterval,omitempty"`
	Timing                *Timing                `json:"timing,omitempty"`
	UserMetadata          map[string]string      `json:"userMetadata,omitempty"`
}

// CreateJobRequest submits a job. Role and Settings are required by the service.
type CreateJobRequest struct {
	RequestBase `json:"-"`

	AccelerationSettings *AccelerationSettings `json:"accelerationSettings,omitempty"`
	BillingTagsSource    *BillingTagsSource    `json:"billingTagsSource,omitempty"`

	// ClientRequestToken makes the request idempotent. See EnsureClientRequestToken.
	ClientRequestToken *string `json:"clientRequestToken,omitempty"`

	HopDestinations       []*HopDestination      `json:"hopDestinations,omitempty"`
	JobTemplate           *string                `json:"jobTemplate,omitempty"`
	Priority              *int64                 `json:"priority,omitempty"`
	Queue                 *string                `json:"queue,omitempty"`
	Role                  *string                `json:"role,omitempty"`
	Settings              *JobSettings           `json:"settings,omitempty"`
	SimulateReservedQueue *SimulateReservedQueue `json:"simulateReservedQueue,omitempty"`
	StatusUpdateInterval  *StatusUpdateInterval  `json:"statusUpdateInterval,omitempty"`
	Tags                  map[string]string      `json:"tags,omitempty"`
	UserMetadata          map[string]string      `json:"userMetadata,omitempty"`
}

type CreateJobResult struct {
	ResponseMetadata `json:"-"`

	Job *Job `json:"job,omitempty"`
}

type GetJobRequest struct {
	RequestBase `json:"-"`

	Id *string `json:"id,omitempty"`
}

type GetJobResult struct {
	ResponseMetadata `json:"-"`

	Job *Job `json:"job,omitempty"`
}

type CancelJobRequest struct {
	RequestBase `json:"-"`

	Id *string `json:"id,omitempty"`
}

type CancelJobResult struct {
	ResponseMetadata `json:"-"`
}

type ListJobsRequest struct {
	RequestBase `json:"-"`

	MaxResults *int64     `json:"maxResults,omitempty"`
	NextToken  *string    `json:"nextToken,omitempty"`
	Order      *Order     `json:"order,omitempty"`
	Queue      *string    `json:"queue,omitempty"`
	Status     *JobStatus `json:"status,omitempty"`
}

type ListJobsResult struct {
	ResponseMetadata `json:"-"`

	Jobs      []*Job  `json:"jobs,omitempty"`
	NextToken *string `json:"nextToken,omitempty"`
}

// EnsureClientRequestToken sets ClientRequestToken to a random UUID when it is absent, so
// retries of the same request are recognized by the service. A token that is already set
// is kept.
func (s *CreateJobRequest) EnsureClientRequestToken() *CreateJobRequest {
	if s.ClientRequestToken == nil {
		s.SetClientRequestToken(uuid.NewString())
	}
	return s
}
