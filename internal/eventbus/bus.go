package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/Rorical/ZenPad/internal/models"
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// SaveDraftEvent - UI hands the current draft to core for persistence
type SaveDraftEvent struct {
	Draft models.Draft
}

func (e SaveDraftEvent) UIEvent() {}

// SuggestEvent - UI requests a continuation or a title for the content
type SuggestEvent struct {
	Kind    models.SuggestionKind
	Content string
}

func (e SuggestEvent) UIEvent() {}

// StatusEvent - Core pushes the suggestion status to UI
type StatusEvent struct {
	Status models.AppStatus
	Online bool
}

func (e StatusEvent) CoreEvent() {}

// SuggestionEvent - Core delivers a finished suggestion (or its fallback)
type SuggestionEvent struct {
	Kind models.SuggestionKind
	Text string
}

func (e SuggestionEvent) CoreEvent() {}

// NoticeEvent - Core asks UI to flash a message in the footer
type NoticeEvent struct {
	Text  string
	Error bool
}

func (e NoticeEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

// ErrClosed is returned by sends after Close.
var ErrClosed = errors.New("event bus is closed")

// CircuitBreakerState represents the state of circuit breaker
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

// CircuitBreaker stops traffic after repeated delivery failures so a stuck
// consumer cannot be flooded. It is shared by both directions of the bus.
type CircuitBreaker struct {
	mu              sync.Mutex
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           CircuitBreakerState
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == CircuitOpen {
		// Check if we should transition to half-open
		if time.Since(cb.lastFailureTime) > cb.resetTimeout {
			cb.state = CircuitHalfOpen
		}
	}
	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount = 0
	cb.state = CircuitClosed
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount++
	cb.lastFailureTime = time.Now()

	if cb.failureCount >= cb.maxFailures {
		cb.state = CircuitOpen
	}
}

func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// EventBus handles communication between UI and Core with circuit breaker
type EventBus struct {
	uiToCore       chan UIEvent
	coreToUI       chan CoreEvent
	errorCallback  func(EventBusError)
	circuitBreaker *CircuitBreaker
	closeOnce      sync.Once
	closed         chan struct{}
}

func NewEventBus() *EventBus {
	return &EventBus{
		uiToCore:       make(chan UIEvent, 100),
		coreToUI:       make(chan CoreEvent, 100),
		circuitBreaker: NewCircuitBreaker(5, 30*time.Second),
		closed:         make(chan struct{}),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}

	eb.circuitBreaker.RecordFailure()

	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	if eb.circuitBreaker.IsOpen() {
		err := errors.New("circuit breaker is open")
		eb.reportError("SendToCore", err)
		return err
	}

	select {
	case <-eb.closed:
		return ErrClosed
	default:
	}

	select {
	case eb.uiToCore <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		err := errors.New("UI to Core channel is full")
		eb.reportError("SendToCore", err)
		return err
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	if eb.circuitBreaker.IsOpen() {
		err := errors.New("circuit breaker is open")
		eb.reportError("SendToUI", err)
		return err
	}

	select {
	case <-eb.closed:
		return ErrClosed
	default:
	}

	select {
	case eb.coreToUI <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		err := errors.New("Core to UI channel is full")
		eb.reportError("SendToUI", err)
		return err
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

// Done is closed once the bus is closed.
func (eb *EventBus) Done() <-chan struct{} {
	return eb.closed
}

func (eb *EventBus) GetCircuitBreakerState() CircuitBreakerState {
	return eb.circuitBreaker.State()
}

// Close marks the bus closed. The channels themselves stay open so a late
// sender can never panic; readers select on Done.
func (eb *EventBus) Close() {
	eb.closeOnce.Do(func() {
		close(eb.closed)
	})
}
