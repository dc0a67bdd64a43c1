// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/deadletter"
	"github.com/mnemonic-nexus/mnx/ent/emocurrent"
	"github.com/mnemonic-nexus/mnx/ent/emohistory"
	"github.com/mnemonic-nexus/mnx/ent/emolink"
	"github.com/mnemonic-nexus/mnx/ent/graphedge"
	"github.com/mnemonic-nexus/mnx/ent/graphnode"
	"github.com/mnemonic-nexus/mnx/ent/note"
	"github.com/mnemonic-nexus/mnx/ent/notelink"
	"github.com/mnemonic-nexus/mnx/ent/notetag"
	"github.com/mnemonic-nexus/mnx/ent/outboxentry"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
	"github.com/mnemonic-nexus/mnx/ent/watermark"
	"github.com/mnemonic-nexus/mnx/ent/worldevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDeadLetter  = "DeadLetter"
	TypeEmoCurrent  = "EmoCurrent"
	TypeEmoHistory  = "EmoHistory"
	TypeEmoLink     = "EmoLink"
	TypeGraphEdge   = "GraphEdge"
	TypeGraphNode   = "GraphNode"
	TypeNote        = "Note"
	TypeNoteLink    = "NoteLink"
	TypeNoteTag     = "NoteTag"
	TypeOutboxEntry = "OutboxEntry"
	TypeWatermark   = "Watermark"
	TypeWorldEvent  = "WorldEvent"
)

// DeadLetterMutation represents an operation that mutates the DeadLetter nodes in the graph.
type DeadLetterMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	event_id      *uuid.UUID
	world_id      *uuid.UUID
	branch        *string
	kind          *string
	envelope      *map[string]interface{}
	error         *string
	publisher_id  *string
	attempts      *int
	addattempts   *int
	moved_at      *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DeadLetter, error)
	predicates    []predicate.DeadLetter
}

var _ ent.Mutation = (*DeadLetterMutation)(nil)

// deadletterOption allows management of the mutation configuration using functional options.
type deadletterOption func(*DeadLetterMutation)

// newDeadLetterMutation creates new mutation for the DeadLetter entity.
func newDeadLetterMutation(c config, op Op, opts ...deadletterOption) *DeadLetterMutation {
	m := &DeadLetterMutation{
		config:        c,
		op:            op,
		typ:           TypeDeadLetter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeadLetterID sets the ID field of the mutation.
func withDeadLetterID(id int64) deadletterOption {
	return func(m *DeadLetterMutation) {
		var (
			err   error
			once  sync.Once
			value *DeadLetter
		)
		m.oldValue = func(ctx context.Context) (*DeadLetter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeadLetter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeadLetter sets the old DeadLetter of the mutation.
func withDeadLetter(node *DeadLetter) deadletterOption {
	return func(m *DeadLetterMutation) {
		m.oldValue = func(context.Context) (*DeadLetter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeadLetterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeadLetterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeadLetter entities.
func (m *DeadLetterMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeadLetterMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeadLetterMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeadLetter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *DeadLetterMutation) SetEventID(u uuid.UUID) {
	m.event_id = &u
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *DeadLetterMutation) EventID() (r uuid.UUID, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldEventID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *DeadLetterMutation) ResetEventID() {
	m.event_id = nil
}

// SetWorldID sets the "world_id" field.
func (m *DeadLetterMutation) SetWorldID(u uuid.UUID) {
	m.world_id = &u
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *DeadLetterMutation) WorldID() (r uuid.UUID, exists bool) {
	v := m.world_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldWorldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *DeadLetterMutation) ResetWorldID() {
	m.world_id = nil
}

// SetBranch sets the "branch" field.
func (m *DeadLetterMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *DeadLetterMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *DeadLetterMutation) ResetBranch() {
	m.branch = nil
}

// SetKind sets the "kind" field.
func (m *DeadLetterMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *DeadLetterMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *DeadLetterMutation) ResetKind() {
	m.kind = nil
}

// SetEnvelope sets the "envelope" field.
func (m *DeadLetterMutation) SetEnvelope(value map[string]interface{}) {
	m.envelope = &value
}

// Envelope returns the value of the "envelope" field in the mutation.
func (m *DeadLetterMutation) Envelope() (r map[string]interface{}, exists bool) {
	v := m.envelope
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvelope returns the old "envelope" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldEnvelope(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvelope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvelope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvelope: %w", err)
	}
	return oldValue.Envelope, nil
}

// ResetEnvelope resets all changes to the "envelope" field.
func (m *DeadLetterMutation) ResetEnvelope() {
	m.envelope = nil
}

// SetError sets the "error" field.
func (m *DeadLetterMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *DeadLetterMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ResetError resets all changes to the "error" field.
func (m *DeadLetterMutation) ResetError() {
	m.error = nil
}

// SetPublisherID sets the "publisher_id" field.
func (m *DeadLetterMutation) SetPublisherID(s string) {
	m.publisher_id = &s
}

// PublisherID returns the value of the "publisher_id" field in the mutation.
func (m *DeadLetterMutation) PublisherID() (r string, exists bool) {
	v := m.publisher_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublisherID returns the old "publisher_id" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldPublisherID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublisherID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublisherID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublisherID: %w", err)
	}
	return oldValue.PublisherID, nil
}

// ResetPublisherID resets all changes to the "publisher_id" field.
func (m *DeadLetterMutation) ResetPublisherID() {
	m.publisher_id = nil
}

// SetAttempts sets the "attempts" field.
func (m *DeadLetterMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *DeadLetterMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *DeadLetterMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *DeadLetterMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *DeadLetterMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMovedAt sets the "moved_at" field.
func (m *DeadLetterMutation) SetMovedAt(t time.Time) {
	m.moved_at = &t
}

// MovedAt returns the value of the "moved_at" field in the mutation.
func (m *DeadLetterMutation) MovedAt() (r time.Time, exists bool) {
	v := m.moved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMovedAt returns the old "moved_at" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldMovedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMovedAt: %w", err)
	}
	return oldValue.MovedAt, nil
}

// ResetMovedAt resets all changes to the "moved_at" field.
func (m *DeadLetterMutation) ResetMovedAt() {
	m.moved_at = nil
}

// Where appends a list predicates to the DeadLetterMutation builder.
func (m *DeadLetterMutation) Where(ps ...predicate.DeadLetter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeadLetterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeadLetterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeadLetter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeadLetterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeadLetterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeadLetter).
func (m *DeadLetterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeadLetterMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.event_id != nil {
		fields = append(fields, deadletter.FieldEventID)
	}
	if m.world_id != nil {
		fields = append(fields, deadletter.FieldWorldID)
	}
	if m.branch != nil {
		fields = append(fields, deadletter.FieldBranch)
	}
	if m.kind != nil {
		fields = append(fields, deadletter.FieldKind)
	}
	if m.envelope != nil {
		fields = append(fields, deadletter.FieldEnvelope)
	}
	if m.error != nil {
		fields = append(fields, deadletter.FieldError)
	}
	if m.publisher_id != nil {
		fields = append(fields, deadletter.FieldPublisherID)
	}
	if m.attempts != nil {
		fields = append(fields, deadletter.FieldAttempts)
	}
	if m.moved_at != nil {
		fields = append(fields, deadletter.FieldMovedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeadLetterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deadletter.FieldEventID:
		return m.EventID()
	case deadletter.FieldWorldID:
		return m.WorldID()
	case deadletter.FieldBranch:
		return m.Branch()
	case deadletter.FieldKind:
		return m.Kind()
	case deadletter.FieldEnvelope:
		return m.Envelope()
	case deadletter.FieldError:
		return m.Error()
	case deadletter.FieldPublisherID:
		return m.PublisherID()
	case deadletter.FieldAttempts:
		return m.Attempts()
	case deadletter.FieldMovedAt:
		return m.MovedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeadLetterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deadletter.FieldEventID:
		return m.OldEventID(ctx)
	case deadletter.FieldWorldID:
		return m.OldWorldID(ctx)
	case deadletter.FieldBranch:
		return m.OldBranch(ctx)
	case deadletter.FieldKind:
		return m.OldKind(ctx)
	case deadletter.FieldEnvelope:
		return m.OldEnvelope(ctx)
	case deadletter.FieldError:
		return m.OldError(ctx)
	case deadletter.FieldPublisherID:
		return m.OldPublisherID(ctx)
	case deadletter.FieldAttempts:
		return m.OldAttempts(ctx)
	case deadletter.FieldMovedAt:
		return m.OldMovedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeadLetter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deadletter.FieldEventID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case deadletter.FieldWorldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case deadletter.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case deadletter.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case deadletter.FieldEnvelope:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvelope(v)
		return nil
	case deadletter.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case deadletter.FieldPublisherID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublisherID(v)
		return nil
	case deadletter.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case deadletter.FieldMovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMovedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeadLetter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeadLetterMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, deadletter.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeadLetterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deadletter.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deadletter.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown DeadLetter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeadLetterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeadLetterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeadLetterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DeadLetter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeadLetterMutation) ResetField(name string) error {
	switch name {
	case deadletter.FieldEventID:
		m.ResetEventID()
		return nil
	case deadletter.FieldWorldID:
		m.ResetWorldID()
		return nil
	case deadletter.FieldBranch:
		m.ResetBranch()
		return nil
	case deadletter.FieldKind:
		m.ResetKind()
		return nil
	case deadletter.FieldEnvelope:
		m.ResetEnvelope()
		return nil
	case deadletter.FieldError:
		m.ResetError()
		return nil
	case deadletter.FieldPublisherID:
		m.ResetPublisherID()
		return nil
	case deadletter.FieldAttempts:
		m.ResetAttempts()
		return nil
	case deadletter.FieldMovedAt:
		m.ResetMovedAt()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeadLetterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeadLetterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeadLetterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeadLetterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeadLetterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeadLetterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeadLetterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeadLetter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeadLetterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeadLetter edge %s", name)
}

// EmoCurrentMutation represents an operation that mutates the EmoCurrent nodes in the graph.
type EmoCurrentMutation struct {
	config
	op              Op
	typ             string
	id              *int
	emo_id          *uuid.UUID
	world_id        *uuid.UUID
	branch          *string
	emo_type        *emocurrent.EmoType
	emo_version     *int
	addemo_version  *int
	tenant_id       *uuid.UUID
	content         *string
	tags            *[]string
	appendtags      []string
	mime_type       *string
	source_kind     *emocurrent.SourceKind
	source_uri      *string
	deleted         *bool
	deleted_at      *time.Time
	deletion_reason *string
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*EmoCurrent, error)
	predicates      []predicate.EmoCurrent
}

var _ ent.Mutation = (*EmoCurrentMutation)(nil)

// emocurrentOption allows management of the mutation configuration using functional options.
type emocurrentOption func(*EmoCurrentMutation)

// newEmoCurrentMutation creates new mutation for the EmoCurrent entity.
func newEmoCurrentMutation(c config, op Op, opts ...emocurrentOption) *EmoCurrentMutation {
	m := &EmoCurrentMutation{
		config:        c,
		op:            op,
		typ:           TypeEmoCurrent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmoCurrentID sets the ID field of the mutation.
func withEmoCurrentID(id int) emocurrentOption {
	return func(m *EmoCurrentMutation) {
		var (
			err   error
			once  sync.Once
			value *EmoCurrent
		)
		m.oldValue = func(ctx context.Context) (*EmoCurrent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmoCurrent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmoCurrent sets the old EmoCurrent of the mutation.
func withEmoCurrent(node *EmoCurrent) emocurrentOption {
	return func(m *EmoCurrentMutation) {
		m.oldValue = func(context.Context) (*EmoCurrent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmoCurrentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmoCurrentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmoCurrentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmoCurrentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmoCurrent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmoID sets the "emo_id" field.
func (m *EmoCurrentMutation) SetEmoID(u uuid.UUID) {
	m.emo_id = &u
}

// EmoID returns the value of the "emo_id" field in the mutation.
func (m *EmoCurrentMutation) EmoID() (r uuid.UUID, exists bool) {
	v := m.emo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmoID returns the old "emo_id" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldEmoID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmoID: %w", err)
	}
	return oldValue.EmoID, nil
}

// ResetEmoID resets all changes to the "emo_id" field.
func (m *EmoCurrentMutation) ResetEmoID() {
	m.emo_id = nil
}

// SetWorldID sets the "world_id" field.
func (m *EmoCurrentMutation) SetWorldID(u uuid.UUID) {
	m.world_id = &u
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *EmoCurrentMutation) WorldID() (r uuid.UUID, exists bool) {
	v := m.world_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldWorldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *EmoCurrentMutation) ResetWorldID() {
	m.world_id = nil
}

// SetBranch sets the "branch" field.
func (m *EmoCurrentMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *EmoCurrentMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *EmoCurrentMutation) ResetBranch() {
	m.branch = nil
}

// SetEmoType sets the "emo_type" field.
func (m *EmoCurrentMutation) SetEmoType(et emocurrent.EmoType) {
	m.emo_type = &et
}

// EmoType returns the value of the "emo_type" field in the mutation.
func (m *EmoCurrentMutation) EmoType() (r emocurrent.EmoType, exists bool) {
	v := m.emo_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEmoType returns the old "emo_type" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldEmoType(ctx context.Context) (v emocurrent.EmoType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmoType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmoType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmoType: %w", err)
	}
	return oldValue.EmoType, nil
}

// ResetEmoType resets all changes to the "emo_type" field.
func (m *EmoCurrentMutation) ResetEmoType() {
	m.emo_type = nil
}

// SetEmoVersion sets the "emo_version" field.
func (m *EmoCurrentMutation) SetEmoVersion(i int) {
	m.emo_version = &i
	m.addemo_version = nil
}

// EmoVersion returns the value of the "emo_version" field in the mutation.
func (m *EmoCurrentMutation) EmoVersion() (r int, exists bool) {
	v := m.emo_version
	if v == nil {
		return
	}
	return *v, true
}

// OldEmoVersion returns the old "emo_version" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldEmoVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmoVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmoVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmoVersion: %w", err)
	}
	return oldValue.EmoVersion, nil
}

// AddEmoVersion adds i to the "emo_version" field.
func (m *EmoCurrentMutation) AddEmoVersion(i int) {
	if m.addemo_version != nil {
		*m.addemo_version += i
	} else {
		m.addemo_version = &i
	}
}

// AddedEmoVersion returns the value that was added to the "emo_version" field in this mutation.
func (m *EmoCurrentMutation) AddedEmoVersion() (r int, exists bool) {
	v := m.addemo_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetEmoVersion resets all changes to the "emo_version" field.
func (m *EmoCurrentMutation) ResetEmoVersion() {
	m.emo_version = nil
	m.addemo_version = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *EmoCurrentMutation) SetTenantID(u uuid.UUID) {
	m.tenant_id = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *EmoCurrentMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *EmoCurrentMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetContent sets the "content" field.
func (m *EmoCurrentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *EmoCurrentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *EmoCurrentMutation) ClearContent() {
	m.content = nil
	m.clearedFields[emocurrent.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *EmoCurrentMutation) ContentCleared() bool {
	_, ok := m.clearedFields[emocurrent.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *EmoCurrentMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, emocurrent.FieldContent)
}

// SetTags sets the "tags" field.
func (m *EmoCurrentMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *EmoCurrentMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *EmoCurrentMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *EmoCurrentMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *EmoCurrentMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[emocurrent.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *EmoCurrentMutation) TagsCleared() bool {
	_, ok := m.clearedFields[emocurrent.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *EmoCurrentMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, emocurrent.FieldTags)
}

// SetMimeType sets the "mime_type" field.
func (m *EmoCurrentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *EmoCurrentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *EmoCurrentMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetSourceKind sets the "source_kind" field.
func (m *EmoCurrentMutation) SetSourceKind(ek emocurrent.SourceKind) {
	m.source_kind = &ek
}

// SourceKind returns the value of the "source_kind" field in the mutation.
func (m *EmoCurrentMutation) SourceKind() (r emocurrent.SourceKind, exists bool) {
	v := m.source_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceKind returns the old "source_kind" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldSourceKind(ctx context.Context) (v emocurrent.SourceKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceKind: %w", err)
	}
	return oldValue.SourceKind, nil
}

// ResetSourceKind resets all changes to the "source_kind" field.
func (m *EmoCurrentMutation) ResetSourceKind() {
	m.source_kind = nil
}

// SetSourceURI sets the "source_uri" field.
func (m *EmoCurrentMutation) SetSourceURI(s string) {
	m.source_uri = &s
}

// SourceURI returns the value of the "source_uri" field in the mutation.
func (m *EmoCurrentMutation) SourceURI() (r string, exists bool) {
	v := m.source_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURI returns the old "source_uri" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldSourceURI(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURI: %w", err)
	}
	return oldValue.SourceURI, nil
}

// ClearSourceURI clears the value of the "source_uri" field.
func (m *EmoCurrentMutation) ClearSourceURI() {
	m.source_uri = nil
	m.clearedFields[emocurrent.FieldSourceURI] = struct{}{}
}

// SourceURICleared returns if the "source_uri" field was cleared in this mutation.
func (m *EmoCurrentMutation) SourceURICleared() bool {
	_, ok := m.clearedFields[emocurrent.FieldSourceURI]
	return ok
}

// ResetSourceURI resets all changes to the "source_uri" field.
func (m *EmoCurrentMutation) ResetSourceURI() {
	m.source_uri = nil
	delete(m.clearedFields, emocurrent.FieldSourceURI)
}

// SetDeleted sets the "deleted" field.
func (m *EmoCurrentMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *EmoCurrentMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *EmoCurrentMutation) ResetDeleted() {
	m.deleted = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *EmoCurrentMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *EmoCurrentMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *EmoCurrentMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[emocurrent.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *EmoCurrentMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[emocurrent.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *EmoCurrentMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, emocurrent.FieldDeletedAt)
}

// SetDeletionReason sets the "deletion_reason" field.
func (m *EmoCurrentMutation) SetDeletionReason(s string) {
	m.deletion_reason = &s
}

// DeletionReason returns the value of the "deletion_reason" field in the mutation.
func (m *EmoCurrentMutation) DeletionReason() (r string, exists bool) {
	v := m.deletion_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletionReason returns the old "deletion_reason" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldDeletionReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletionReason: %w", err)
	}
	return oldValue.DeletionReason, nil
}

// ClearDeletionReason clears the value of the "deletion_reason" field.
func (m *EmoCurrentMutation) ClearDeletionReason() {
	m.deletion_reason = nil
	m.clearedFields[emocurrent.FieldDeletionReason] = struct{}{}
}

// DeletionReasonCleared returns if the "deletion_reason" field was cleared in this mutation.
func (m *EmoCurrentMutation) DeletionReasonCleared() bool {
	_, ok := m.clearedFields[emocurrent.FieldDeletionReason]
	return ok
}

// ResetDeletionReason resets all changes to the "deletion_reason" field.
func (m *EmoCurrentMutation) ResetDeletionReason() {
	m.deletion_reason = nil
	delete(m.clearedFields, emocurrent.FieldDeletionReason)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EmoCurrentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EmoCurrentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EmoCurrent entity.
// If the EmoCurrent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoCurrentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EmoCurrentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EmoCurrentMutation builder.
func (m *EmoCurrentMutation) Where(ps ...predicate.EmoCurrent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmoCurrentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmoCurrentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmoCurrent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmoCurrentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmoCurrentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmoCurrent).
func (m *EmoCurrentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmoCurrentMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.emo_id != nil {
		fields = append(fields, emocurrent.FieldEmoID)
	}
	if m.world_id != nil {
		fields = append(fields, emocurrent.FieldWorldID)
	}
	if m.branch != nil {
		fields = append(fields, emocurrent.FieldBranch)
	}
	if m.emo_type != nil {
		fields = append(fields, emocurrent.FieldEmoType)
	}
	if m.emo_version != nil {
		fields = append(fields, emocurrent.FieldEmoVersion)
	}
	if m.tenant_id != nil {
		fields = append(fields, emocurrent.FieldTenantID)
	}
	if m.content != nil {
		fields = append(fields, emocurrent.FieldContent)
	}
	if m.tags != nil {
		fields = append(fields, emocurrent.FieldTags)
	}
	if m.mime_type != nil {
		fields = append(fields, emocurrent.FieldMimeType)
	}
	if m.source_kind != nil {
		fields = append(fields, emocurrent.FieldSourceKind)
	}
	if m.source_uri != nil {
		fields = append(fields, emocurrent.FieldSourceURI)
	}
	if m.deleted != nil {
		fields = append(fields, emocurrent.FieldDeleted)
	}
	if m.deleted_at != nil {
		fields = append(fields, emocurrent.FieldDeletedAt)
	}
	if m.deletion_reason != nil {
		fields = append(fields, emocurrent.FieldDeletionReason)
	}
	if m.updated_at != nil {
		fields = append(fields, emocurrent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmoCurrentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emocurrent.FieldEmoID:
		return m.EmoID()
	case emocurrent.FieldWorldID:
		return m.WorldID()
	case emocurrent.FieldBranch:
		return m.Branch()
	case emocurrent.FieldEmoType:
		return m.EmoType()
	case emocurrent.FieldEmoVersion:
		return m.EmoVersion()
	case emocurrent.FieldTenantID:
		return m.TenantID()
	case emocurrent.FieldContent:
		return m.Content()
	case emocurrent.FieldTags:
		return m.Tags()
	case emocurrent.FieldMimeType:
		return m.MimeType()
	case emocurrent.FieldSourceKind:
		return m.SourceKind()
	case emocurrent.FieldSourceURI:
		return m.SourceURI()
	case emocurrent.FieldDeleted:
		return m.Deleted()
	case emocurrent.FieldDeletedAt:
		return m.DeletedAt()
	case emocurrent.FieldDeletionReason:
		return m.DeletionReason()
	case emocurrent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmoCurrentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emocurrent.FieldEmoID:
		return m.OldEmoID(ctx)
	case emocurrent.FieldWorldID:
		return m.OldWorldID(ctx)
	case emocurrent.FieldBranch:
		return m.OldBranch(ctx)
	case emocurrent.FieldEmoType:
		return m.OldEmoType(ctx)
	case emocurrent.FieldEmoVersion:
		return m.OldEmoVersion(ctx)
	case emocurrent.FieldTenantID:
		return m.OldTenantID(ctx)
	case emocurrent.FieldContent:
		return m.OldContent(ctx)
	case emocurrent.FieldTags:
		return m.OldTags(ctx)
	case emocurrent.FieldMimeType:
		return m.OldMimeType(ctx)
	case emocurrent.FieldSourceKind:
		return m.OldSourceKind(ctx)
	case emocurrent.FieldSourceURI:
		return m.OldSourceURI(ctx)
	case emocurrent.FieldDeleted:
		return m.OldDeleted(ctx)
	case emocurrent.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case emocurrent.FieldDeletionReason:
		return m.OldDeletionReason(ctx)
	case emocurrent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EmoCurrent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmoCurrentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emocurrent.FieldEmoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmoID(v)
		return nil
	case emocurrent.FieldWorldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case emocurrent.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case emocurrent.FieldEmoType:
		v, ok := value.(emocurrent.EmoType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmoType(v)
		return nil
	case emocurrent.FieldEmoVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmoVersion(v)
		return nil
	case emocurrent.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case emocurrent.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case emocurrent.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case emocurrent.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case emocurrent.FieldSourceKind:
		v, ok := value.(emocurrent.SourceKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceKind(v)
		return nil
	case emocurrent.FieldSourceURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURI(v)
		return nil
	case emocurrent.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	case emocurrent.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case emocurrent.FieldDeletionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletionReason(v)
		return nil
	case emocurrent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EmoCurrent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmoCurrentMutation) AddedFields() []string {
	var fields []string
	if m.addemo_version != nil {
		fields = append(fields, emocurrent.FieldEmoVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmoCurrentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case emocurrent.FieldEmoVersion:
		return m.AddedEmoVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmoCurrentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case emocurrent.FieldEmoVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEmoVersion(v)
		return nil
	}
	return fmt.Errorf("unknown EmoCurrent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmoCurrentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emocurrent.FieldContent) {
		fields = append(fields, emocurrent.FieldContent)
	}
	if m.FieldCleared(emocurrent.FieldTags) {
		fields = append(fields, emocurrent.FieldTags)
	}
	if m.FieldCleared(emocurrent.FieldSourceURI) {
		fields = append(fields, emocurrent.FieldSourceURI)
	}
	if m.FieldCleared(emocurrent.FieldDeletedAt) {
		fields = append(fields, emocurrent.FieldDeletedAt)
	}
	if m.FieldCleared(emocurrent.FieldDeletionReason) {
		fields = append(fields, emocurrent.FieldDeletionReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmoCurrentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmoCurrentMutation) ClearField(name string) error {
	switch name {
	case emocurrent.FieldContent:
		m.ClearContent()
		return nil
	case emocurrent.FieldTags:
		m.ClearTags()
		return nil
	case emocurrent.FieldSourceURI:
		m.ClearSourceURI()
		return nil
	case emocurrent.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case emocurrent.FieldDeletionReason:
		m.ClearDeletionReason()
		return nil
	}
	return fmt.Errorf("unknown EmoCurrent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmoCurrentMutation) ResetField(name string) error {
	switch name {
	case emocurrent.FieldEmoID:
		m.ResetEmoID()
		return nil
	case emocurrent.FieldWorldID:
		m.ResetWorldID()
		return nil
	case emocurrent.FieldBranch:
		m.ResetBranch()
		return nil
	case emocurrent.FieldEmoType:
		m.ResetEmoType()
		return nil
	case emocurrent.FieldEmoVersion:
		m.ResetEmoVersion()
		return nil
	case emocurrent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case emocurrent.FieldContent:
		m.ResetContent()
		return nil
	case emocurrent.FieldTags:
		m.ResetTags()
		return nil
	case emocurrent.FieldMimeType:
		m.ResetMimeType()
		return nil
	case emocurrent.FieldSourceKind:
		m.ResetSourceKind()
		return nil
	case emocurrent.FieldSourceURI:
		m.ResetSourceURI()
		return nil
	case emocurrent.FieldDeleted:
		m.ResetDeleted()
		return nil
	case emocurrent.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case emocurrent.FieldDeletionReason:
		m.ResetDeletionReason()
		return nil
	case emocurrent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EmoCurrent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmoCurrentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmoCurrentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmoCurrentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmoCurrentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmoCurrentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmoCurrentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmoCurrentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EmoCurrent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmoCurrentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EmoCurrent edge %s", name)
}

// EmoHistoryMutation represents an operation that mutates the EmoHistory nodes in the graph.
type EmoHistoryMutation struct {
	config
	op              Op
	typ             string
	id              *int
	change_id       *uuid.UUID
	emo_id          *uuid.UUID
	emo_version     *int
	addemo_version  *int
	world_id        *uuid.UUID
	branch          *string
	operation       *emohistory.Operation
	content_hash    *string
	idempotency_key *string
	recorded_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*EmoHistory, error)
	predicates      []predicate.EmoHistory
}

var _ ent.Mutation = (*EmoHistoryMutation)(nil)

// emohistoryOption allows management of the mutation configuration using functional options.
type emohistoryOption func(*EmoHistoryMutation)

// newEmoHistoryMutation creates new mutation for the EmoHistory entity.
func newEmoHistoryMutation(c config, op Op, opts ...emohistoryOption) *EmoHistoryMutation {
	m := &EmoHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeEmoHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmoHistoryID sets the ID field of the mutation.
func withEmoHistoryID(id int) emohistoryOption {
	return func(m *EmoHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *EmoHistory
		)
		m.oldValue = func(ctx context.Context) (*EmoHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmoHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmoHistory sets the old EmoHistory of the mutation.
func withEmoHistory(node *EmoHistory) emohistoryOption {
	return func(m *EmoHistoryMutation) {
		m.oldValue = func(context.Context) (*EmoHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmoHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmoHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmoHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmoHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmoHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChangeID sets the "change_id" field.
func (m *EmoHistoryMutation) SetChangeID(u uuid.UUID) {
	m.change_id = &u
}

// ChangeID returns the value of the "change_id" field in the mutation.
func (m *EmoHistoryMutation) ChangeID() (r uuid.UUID, exists bool) {
	v := m.change_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeID returns the old "change_id" field's value of the EmoHistory entity.
// If the EmoHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoHistoryMutation) OldChangeID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeID: %w", err)
	}
	return oldValue.ChangeID, nil
}

// ClearChangeID clears the value of the "change_id" field.
func (m *EmoHistoryMutation) ClearChangeID() {
	m.change_id = nil
	m.clearedFields[emohistory.FieldChangeID] = struct{}{}
}

// ChangeIDCleared returns if the "change_id" field was cleared in this mutation.
func (m *EmoHistoryMutation) ChangeIDCleared() bool {
	_, ok := m.clearedFields[emohistory.FieldChangeID]
	return ok
}

// ResetChangeID resets all changes to the "change_id" field.
func (m *EmoHistoryMutation) ResetChangeID() {
	m.change_id = nil
	delete(m.clearedFields, emohistory.FieldChangeID)
}

// SetEmoID sets the "emo_id" field.
func (m *EmoHistoryMutation) SetEmoID(u uuid.UUID) {
	m.emo_id = &u
}

// EmoID returns the value of the "emo_id" field in the mutation.
func (m *EmoHistoryMutation) EmoID() (r uuid.UUID, exists bool) {
	v := m.emo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmoID returns the old "emo_id" field's value of the EmoHistory entity.
// If the EmoHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoHistoryMutation) OldEmoID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmoID: %w", err)
	}
	return oldValue.EmoID, nil
}

// ResetEmoID resets all changes to the "emo_id" field.
func (m *EmoHistoryMutation) ResetEmoID() {
	m.emo_id = nil
}

// SetEmoVersion sets the "emo_version" field.
func (m *EmoHistoryMutation) SetEmoVersion(i int) {
	m.emo_version = &i
	m.addemo_version = nil
}

// EmoVersion returns the value of the "emo_version" field in the mutation.
func (m *EmoHistoryMutation) EmoVersion() (r int, exists bool) {
	v := m.emo_version
	if v == nil {
		return
	}
	return *v, true
}

// OldEmoVersion returns the old "emo_version" field's value of the EmoHistory entity.
// If the EmoHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoHistoryMutation) OldEmoVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmoVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmoVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmoVersion: %w", err)
	}
	return oldValue.EmoVersion, nil
}

// AddEmoVersion adds i to the "emo_version" field.
func (m *EmoHistoryMutation) AddEmoVersion(i int) {
	if m.addemo_version != nil {
		*m.addemo_version += i
	} else {
		m.addemo_version = &i
	}
}

// AddedEmoVersion returns the value that was added to the "emo_version" field in this mutation.
func (m *EmoHistoryMutation) AddedEmoVersion() (r int, exists bool) {
	v := m.addemo_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetEmoVersion resets all changes to the "emo_version" field.
func (m *EmoHistoryMutation) ResetEmoVersion() {
	m.emo_version = nil
	m.addemo_version = nil
}

// SetWorldID sets the "world_id" field.
func (m *EmoHistoryMutation) SetWorldID(u uuid.UUID) {
	m.world_id = &u
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *EmoHistoryMutation) WorldID() (r uuid.UUID, exists bool) {
	v := m.world_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the EmoHistory entity.
// If the EmoHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoHistoryMutation) OldWorldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *EmoHistoryMutation) ResetWorldID() {
	m.world_id = nil
}

// SetBranch sets the "branch" field.
func (m *EmoHistoryMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *EmoHistoryMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the EmoHistory entity.
// If the EmoHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoHistoryMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *EmoHistoryMutation) ResetBranch() {
	m.branch = nil
}

// SetOperation sets the "operation" field.
func (m *EmoHistoryMutation) SetOperation(e emohistory.Operation) {
	m.operation = &e
}

// Operation returns the value of the "operation" field in the mutation.
func (m *EmoHistoryMutation) Operation() (r emohistory.Operation, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the EmoHistory entity.
// If the EmoHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoHistoryMutation) OldOperation(ctx context.Context) (v emohistory.Operation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *EmoHistoryMutation) ResetOperation() {
	m.operation = nil
}

// SetContentHash sets the "content_hash" field.
func (m *EmoHistoryMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *EmoHistoryMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the EmoHistory entity.
// If the EmoHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoHistoryMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *EmoHistoryMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *EmoHistoryMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *EmoHistoryMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the EmoHistory entity.
// If the EmoHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoHistoryMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *EmoHistoryMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[emohistory.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *EmoHistoryMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[emohistory.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *EmoHistoryMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, emohistory.FieldIdempotencyKey)
}

// SetRecordedAt sets the "recorded_at" field.
func (m *EmoHistoryMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *EmoHistoryMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the EmoHistory entity.
// If the EmoHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoHistoryMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *EmoHistoryMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// Where appends a list predicates to the EmoHistoryMutation builder.
func (m *EmoHistoryMutation) Where(ps ...predicate.EmoHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmoHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmoHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmoHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmoHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmoHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmoHistory).
func (m *EmoHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmoHistoryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.change_id != nil {
		fields = append(fields, emohistory.FieldChangeID)
	}
	if m.emo_id != nil {
		fields = append(fields, emohistory.FieldEmoID)
	}
	if m.emo_version != nil {
		fields = append(fields, emohistory.FieldEmoVersion)
	}
	if m.world_id != nil {
		fields = append(fields, emohistory.FieldWorldID)
	}
	if m.branch != nil {
		fields = append(fields, emohistory.FieldBranch)
	}
	if m.operation != nil {
		fields = append(fields, emohistory.FieldOperation)
	}
	if m.content_hash != nil {
		fields = append(fields, emohistory.FieldContentHash)
	}
	if m.idempotency_key != nil {
		fields = append(fields, emohistory.FieldIdempotencyKey)
	}
	if m.recorded_at != nil {
		fields = append(fields, emohistory.FieldRecordedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmoHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emohistory.FieldChangeID:
		return m.ChangeID()
	case emohistory.FieldEmoID:
		return m.EmoID()
	case emohistory.FieldEmoVersion:
		return m.EmoVersion()
	case emohistory.FieldWorldID:
		return m.WorldID()
	case emohistory.FieldBranch:
		return m.Branch()
	case emohistory.FieldOperation:
		return m.Operation()
	case emohistory.FieldContentHash:
		return m.ContentHash()
	case emohistory.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case emohistory.FieldRecordedAt:
		return m.RecordedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmoHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emohistory.FieldChangeID:
		return m.OldChangeID(ctx)
	case emohistory.FieldEmoID:
		return m.OldEmoID(ctx)
	case emohistory.FieldEmoVersion:
		return m.OldEmoVersion(ctx)
	case emohistory.FieldWorldID:
		return m.OldWorldID(ctx)
	case emohistory.FieldBranch:
		return m.OldBranch(ctx)
	case emohistory.FieldOperation:
		return m.OldOperation(ctx)
	case emohistory.FieldContentHash:
		return m.OldContentHash(ctx)
	case emohistory.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case emohistory.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EmoHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmoHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emohistory.FieldChangeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeID(v)
		return nil
	case emohistory.FieldEmoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmoID(v)
		return nil
	case emohistory.FieldEmoVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmoVersion(v)
		return nil
	case emohistory.FieldWorldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case emohistory.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case emohistory.FieldOperation:
		v, ok := value.(emohistory.Operation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case emohistory.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case emohistory.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case emohistory.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EmoHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmoHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addemo_version != nil {
		fields = append(fields, emohistory.FieldEmoVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmoHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case emohistory.FieldEmoVersion:
		return m.AddedEmoVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmoHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case emohistory.FieldEmoVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEmoVersion(v)
		return nil
	}
	return fmt.Errorf("unknown EmoHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmoHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emohistory.FieldChangeID) {
		fields = append(fields, emohistory.FieldChangeID)
	}
	if m.FieldCleared(emohistory.FieldIdempotencyKey) {
		fields = append(fields, emohistory.FieldIdempotencyKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmoHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmoHistoryMutation) ClearField(name string) error {
	switch name {
	case emohistory.FieldChangeID:
		m.ClearChangeID()
		return nil
	case emohistory.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	}
	return fmt.Errorf("unknown EmoHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmoHistoryMutation) ResetField(name string) error {
	switch name {
	case emohistory.FieldChangeID:
		m.ResetChangeID()
		return nil
	case emohistory.FieldEmoID:
		m.ResetEmoID()
		return nil
	case emohistory.FieldEmoVersion:
		m.ResetEmoVersion()
		return nil
	case emohistory.FieldWorldID:
		m.ResetWorldID()
		return nil
	case emohistory.FieldBranch:
		m.ResetBranch()
		return nil
	case emohistory.FieldOperation:
		m.ResetOperation()
		return nil
	case emohistory.FieldContentHash:
		m.ResetContentHash()
		return nil
	case emohistory.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case emohistory.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	}
	return fmt.Errorf("unknown EmoHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmoHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmoHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmoHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmoHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmoHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmoHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmoHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EmoHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmoHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EmoHistory edge %s", name)
}

// EmoLinkMutation represents an operation that mutates the EmoLink nodes in the graph.
type EmoLinkMutation struct {
	config
	op            Op
	typ           string
	id            *int
	emo_id        *uuid.UUID
	world_id      *uuid.UUID
	branch        *string
	rel           *emolink.Rel
	target_emo_id *uuid.UUID
	target_uri    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*EmoLink, error)
	predicates    []predicate.EmoLink
}

var _ ent.Mutation = (*EmoLinkMutation)(nil)

// emolinkOption allows management of the mutation configuration using functional options.
type emolinkOption func(*EmoLinkMutation)

// newEmoLinkMutation creates new mutation for the EmoLink entity.
func newEmoLinkMutation(c config, op Op, opts ...emolinkOption) *EmoLinkMutation {
	m := &EmoLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeEmoLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmoLinkID sets the ID field of the mutation.
func withEmoLinkID(id int) emolinkOption {
	return func(m *EmoLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *EmoLink
		)
		m.oldValue = func(ctx context.Context) (*EmoLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmoLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmoLink sets the old EmoLink of the mutation.
func withEmoLink(node *EmoLink) emolinkOption {
	return func(m *EmoLinkMutation) {
		m.oldValue = func(context.Context) (*EmoLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmoLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmoLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmoLinkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmoLinkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmoLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmoID sets the "emo_id" field.
func (m *EmoLinkMutation) SetEmoID(u uuid.UUID) {
	m.emo_id = &u
}

// EmoID returns the value of the "emo_id" field in the mutation.
func (m *EmoLinkMutation) EmoID() (r uuid.UUID, exists bool) {
	v := m.emo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmoID returns the old "emo_id" field's value of the EmoLink entity.
// If the EmoLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoLinkMutation) OldEmoID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmoID: %w", err)
	}
	return oldValue.EmoID, nil
}

// ResetEmoID resets all changes to the "emo_id" field.
func (m *EmoLinkMutation) ResetEmoID() {
	m.emo_id = nil
}

// SetWorldID sets the "world_id" field.
func (m *EmoLinkMutation) SetWorldID(u uuid.UUID) {
	m.world_id = &u
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *EmoLinkMutation) WorldID() (r uuid.UUID, exists bool) {
	v := m.world_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the EmoLink entity.
// If the EmoLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoLinkMutation) OldWorldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *EmoLinkMutation) ResetWorldID() {
	m.world_id = nil
}

// SetBranch sets the "branch" field.
func (m *EmoLinkMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *EmoLinkMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the EmoLink entity.
// If the EmoLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoLinkMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *EmoLinkMutation) ResetBranch() {
	m.branch = nil
}

// SetRel sets the "rel" field.
func (m *EmoLinkMutation) SetRel(e emolink.Rel) {
	m.rel = &e
}

// Rel returns the value of the "rel" field in the mutation.
func (m *EmoLinkMutation) Rel() (r emolink.Rel, exists bool) {
	v := m.rel
	if v == nil {
		return
	}
	return *v, true
}

// OldRel returns the old "rel" field's value of the EmoLink entity.
// If the EmoLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoLinkMutation) OldRel(ctx context.Context) (v emolink.Rel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRel: %w", err)
	}
	return oldValue.Rel, nil
}

// ResetRel resets all changes to the "rel" field.
func (m *EmoLinkMutation) ResetRel() {
	m.rel = nil
}

// SetTargetEmoID sets the "target_emo_id" field.
func (m *EmoLinkMutation) SetTargetEmoID(u uuid.UUID) {
	m.target_emo_id = &u
}

// TargetEmoID returns the value of the "target_emo_id" field in the mutation.
func (m *EmoLinkMutation) TargetEmoID() (r uuid.UUID, exists bool) {
	v := m.target_emo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetEmoID returns the old "target_emo_id" field's value of the EmoLink entity.
// If the EmoLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoLinkMutation) OldTargetEmoID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetEmoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetEmoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetEmoID: %w", err)
	}
	return oldValue.TargetEmoID, nil
}

// ClearTargetEmoID clears the value of the "target_emo_id" field.
func (m *EmoLinkMutation) ClearTargetEmoID() {
	m.target_emo_id = nil
	m.clearedFields[emolink.FieldTargetEmoID] = struct{}{}
}

// TargetEmoIDCleared returns if the "target_emo_id" field was cleared in this mutation.
func (m *EmoLinkMutation) TargetEmoIDCleared() bool {
	_, ok := m.clearedFields[emolink.FieldTargetEmoID]
	return ok
}

// ResetTargetEmoID resets all changes to the "target_emo_id" field.
func (m *EmoLinkMutation) ResetTargetEmoID() {
	m.target_emo_id = nil
	delete(m.clearedFields, emolink.FieldTargetEmoID)
}

// SetTargetURI sets the "target_uri" field.
func (m *EmoLinkMutation) SetTargetURI(s string) {
	m.target_uri = &s
}

// TargetURI returns the value of the "target_uri" field in the mutation.
func (m *EmoLinkMutation) TargetURI() (r string, exists bool) {
	v := m.target_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetURI returns the old "target_uri" field's value of the EmoLink entity.
// If the EmoLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoLinkMutation) OldTargetURI(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetURI: %w", err)
	}
	return oldValue.TargetURI, nil
}

// ClearTargetURI clears the value of the "target_uri" field.
func (m *EmoLinkMutation) ClearTargetURI() {
	m.target_uri = nil
	m.clearedFields[emolink.FieldTargetURI] = struct{}{}
}

// TargetURICleared returns if the "target_uri" field was cleared in this mutation.
func (m *EmoLinkMutation) TargetURICleared() bool {
	_, ok := m.clearedFields[emolink.FieldTargetURI]
	return ok
}

// ResetTargetURI resets all changes to the "target_uri" field.
func (m *EmoLinkMutation) ResetTargetURI() {
	m.target_uri = nil
	delete(m.clearedFields, emolink.FieldTargetURI)
}

// SetCreatedAt sets the "created_at" field.
func (m *EmoLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmoLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmoLink entity.
// If the EmoLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmoLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmoLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EmoLinkMutation builder.
func (m *EmoLinkMutation) Where(ps ...predicate.EmoLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmoLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmoLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmoLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmoLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmoLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmoLink).
func (m *EmoLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmoLinkMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.emo_id != nil {
		fields = append(fields, emolink.FieldEmoID)
	}
	if m.world_id != nil {
		fields = append(fields, emolink.FieldWorldID)
	}
	if m.branch != nil {
		fields = append(fields, emolink.FieldBranch)
	}
	if m.rel != nil {
		fields = append(fields, emolink.FieldRel)
	}
	if m.target_emo_id != nil {
		fields = append(fields, emolink.FieldTargetEmoID)
	}
	if m.target_uri != nil {
		fields = append(fields, emolink.FieldTargetURI)
	}
	if m.created_at != nil {
		fields = append(fields, emolink.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmoLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emolink.FieldEmoID:
		return m.EmoID()
	case emolink.FieldWorldID:
		return m.WorldID()
	case emolink.FieldBranch:
		return m.Branch()
	case emolink.FieldRel:
		return m.Rel()
	case emolink.FieldTargetEmoID:
		return m.TargetEmoID()
	case emolink.FieldTargetURI:
		return m.TargetURI()
	case emolink.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmoLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emolink.FieldEmoID:
		return m.OldEmoID(ctx)
	case emolink.FieldWorldID:
		return m.OldWorldID(ctx)
	case emolink.FieldBranch:
		return m.OldBranch(ctx)
	case emolink.FieldRel:
		return m.OldRel(ctx)
	case emolink.FieldTargetEmoID:
		return m.OldTargetEmoID(ctx)
	case emolink.FieldTargetURI:
		return m.OldTargetURI(ctx)
	case emolink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EmoLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmoLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emolink.FieldEmoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmoID(v)
		return nil
	case emolink.FieldWorldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case emolink.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case emolink.FieldRel:
		v, ok := value.(emolink.Rel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRel(v)
		return nil
	case emolink.FieldTargetEmoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetEmoID(v)
		return nil
	case emolink.FieldTargetURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetURI(v)
		return nil
	case emolink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EmoLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmoLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmoLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmoLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EmoLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmoLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emolink.FieldTargetEmoID) {
		fields = append(fields, emolink.FieldTargetEmoID)
	}
	if m.FieldCleared(emolink.FieldTargetURI) {
		fields = append(fields, emolink.FieldTargetURI)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmoLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmoLinkMutation) ClearField(name string) error {
	switch name {
	case emolink.FieldTargetEmoID:
		m.ClearTargetEmoID()
		return nil
	case emolink.FieldTargetURI:
		m.ClearTargetURI()
		return nil
	}
	return fmt.Errorf("unknown EmoLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmoLinkMutation) ResetField(name string) error {
	switch name {
	case emolink.FieldEmoID:
		m.ResetEmoID()
		return nil
	case emolink.FieldWorldID:
		m.ResetWorldID()
		return nil
	case emolink.FieldBranch:
		m.ResetBranch()
		return nil
	case emolink.FieldRel:
		m.ResetRel()
		return nil
	case emolink.FieldTargetEmoID:
		m.ResetTargetEmoID()
		return nil
	case emolink.FieldTargetURI:
		m.ResetTargetURI()
		return nil
	case emolink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EmoLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmoLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmoLinkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmoLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmoLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmoLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmoLinkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmoLinkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EmoLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmoLinkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EmoLink edge %s", name)
}

// GraphEdgeMutation represents an operation that mutates the GraphEdge nodes in the graph.
type GraphEdgeMutation struct {
	config
	op            Op
	typ           string
	id            *int
	src_id        *uuid.UUID
	world_id      *uuid.UUID
	branch        *string
	rel           *string
	dst_id        *uuid.UUID
	dst_uri       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GraphEdge, error)
	predicates    []predicate.GraphEdge
}

var _ ent.Mutation = (*GraphEdgeMutation)(nil)

// graphedgeOption allows management of the mutation configuration using functional options.
type graphedgeOption func(*GraphEdgeMutation)

// newGraphEdgeMutation creates new mutation for the GraphEdge entity.
func newGraphEdgeMutation(c config, op Op, opts ...graphedgeOption) *GraphEdgeMutation {
	m := &GraphEdgeMutation{
		config:        c,
		op:            op,
		typ:           TypeGraphEdge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGraphEdgeID sets the ID field of the mutation.
func withGraphEdgeID(id int) graphedgeOption {
	return func(m *GraphEdgeMutation) {
		var (
			err   error
			once  sync.Once
			value *GraphEdge
		)
		m.oldValue = func(ctx context.Context) (*GraphEdge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GraphEdge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGraphEdge sets the old GraphEdge of the mutation.
func withGraphEdge(node *GraphEdge) graphedgeOption {
	return func(m *GraphEdgeMutation) {
		m.oldValue = func(context.Context) (*GraphEdge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GraphEdgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GraphEdgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GraphEdgeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GraphEdgeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GraphEdge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSrcID sets the "src_id" field.
func (m *GraphEdgeMutation) SetSrcID(u uuid.UUID) {
	m.src_id = &u
}

// SrcID returns the value of the "src_id" field in the mutation.
func (m *GraphEdgeMutation) SrcID() (r uuid.UUID, exists bool) {
	v := m.src_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSrcID returns the old "src_id" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldSrcID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSrcID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSrcID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSrcID: %w", err)
	}
	return oldValue.SrcID, nil
}

// ResetSrcID resets all changes to the "src_id" field.
func (m *GraphEdgeMutation) ResetSrcID() {
	m.src_id = nil
}

// SetWorldID sets the "world_id" field.
func (m *GraphEdgeMutation) SetWorldID(u uuid.UUID) {
	m.world_id = &u
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *GraphEdgeMutation) WorldID() (r uuid.UUID, exists bool) {
	v := m.world_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldWorldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *GraphEdgeMutation) ResetWorldID() {
	m.world_id = nil
}

// SetBranch sets the "branch" field.
func (m *GraphEdgeMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *GraphEdgeMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *GraphEdgeMutation) ResetBranch() {
	m.branch = nil
}

// SetRel sets the "rel" field.
func (m *GraphEdgeMutation) SetRel(s string) {
	m.rel = &s
}

// Rel returns the value of the "rel" field in the mutation.
func (m *GraphEdgeMutation) Rel() (r string, exists bool) {
	v := m.rel
	if v == nil {
		return
	}
	return *v, true
}

// OldRel returns the old "rel" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldRel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRel: %w", err)
	}
	return oldValue.Rel, nil
}

// ResetRel resets all changes to the "rel" field.
func (m *GraphEdgeMutation) ResetRel() {
	m.rel = nil
}

// SetDstID sets the "dst_id" field.
func (m *GraphEdgeMutation) SetDstID(u uuid.UUID) {
	m.dst_id = &u
}

// DstID returns the value of the "dst_id" field in the mutation.
func (m *GraphEdgeMutation) DstID() (r uuid.UUID, exists bool) {
	v := m.dst_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDstID returns the old "dst_id" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldDstID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDstID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDstID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDstID: %w", err)
	}
	return oldValue.DstID, nil
}

// ClearDstID clears the value of the "dst_id" field.
func (m *GraphEdgeMutation) ClearDstID() {
	m.dst_id = nil
	m.clearedFields[graphedge.FieldDstID] = struct{}{}
}

// DstIDCleared returns if the "dst_id" field was cleared in this mutation.
func (m *GraphEdgeMutation) DstIDCleared() bool {
	_, ok := m.clearedFields[graphedge.FieldDstID]
	return ok
}

// ResetDstID resets all changes to the "dst_id" field.
func (m *GraphEdgeMutation) ResetDstID() {
	m.dst_id = nil
	delete(m.clearedFields, graphedge.FieldDstID)
}

// SetDstURI sets the "dst_uri" field.
func (m *GraphEdgeMutation) SetDstURI(s string) {
	m.dst_uri = &s
}

// DstURI returns the value of the "dst_uri" field in the mutation.
func (m *GraphEdgeMutation) DstURI() (r string, exists bool) {
	v := m.dst_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldDstURI returns the old "dst_uri" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldDstURI(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDstURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDstURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDstURI: %w", err)
	}
	return oldValue.DstURI, nil
}

// ClearDstURI clears the value of the "dst_uri" field.
func (m *GraphEdgeMutation) ClearDstURI() {
	m.dst_uri = nil
	m.clearedFields[graphedge.FieldDstURI] = struct{}{}
}

// DstURICleared returns if the "dst_uri" field was cleared in this mutation.
func (m *GraphEdgeMutation) DstURICleared() bool {
	_, ok := m.clearedFields[graphedge.FieldDstURI]
	return ok
}

// ResetDstURI resets all changes to the "dst_uri" field.
func (m *GraphEdgeMutation) ResetDstURI() {
	m.dst_uri = nil
	delete(m.clearedFields, graphedge.FieldDstURI)
}

// SetCreatedAt sets the "created_at" field.
func (m *GraphEdgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GraphEdgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GraphEdgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GraphEdgeMutation builder.
func (m *GraphEdgeMutation) Where(ps ...predicate.GraphEdge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GraphEdgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GraphEdgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GraphEdge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GraphEdgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GraphEdgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GraphEdge).
func (m *GraphEdgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GraphEdgeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.src_id != nil {
		fields = append(fields, graphedge.FieldSrcID)
	}
	if m.world_id != nil {
		fields = append(fields, graphedge.FieldWorldID)
	}
	if m.branch != nil {
		fields = append(fields, graphedge.FieldBranch)
	}
	if m.rel != nil {
		fields = append(fields, graphedge.FieldRel)
	}
	if m.dst_id != nil {
		fields = append(fields, graphedge.FieldDstID)
	}
	if m.dst_uri != nil {
		fields = append(fields, graphedge.FieldDstURI)
	}
	if m.created_at != nil {
		fields = append(fields, graphedge.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GraphEdgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case graphedge.FieldSrcID:
		return m.SrcID()
	case graphedge.FieldWorldID:
		return m.WorldID()
	case graphedge.FieldBranch:
		return m.Branch()
	case graphedge.FieldRel:
		return m.Rel()
	case graphedge.FieldDstID:
		return m.DstID()
	case graphedge.FieldDstURI:
		return m.DstURI()
	case graphedge.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GraphEdgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case graphedge.FieldSrcID:
		return m.OldSrcID(ctx)
	case graphedge.FieldWorldID:
		return m.OldWorldID(ctx)
	case graphedge.FieldBranch:
		return m.OldBranch(ctx)
	case graphedge.FieldRel:
		return m.OldRel(ctx)
	case graphedge.FieldDstID:
		return m.OldDstID(ctx)
	case graphedge.FieldDstURI:
		return m.OldDstURI(ctx)
	case graphedge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GraphEdge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphEdgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case graphedge.FieldSrcID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSrcID(v)
		return nil
	case graphedge.FieldWorldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case graphedge.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case graphedge.FieldRel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRel(v)
		return nil
	case graphedge.FieldDstID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDstID(v)
		return nil
	case graphedge.FieldDstURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDstURI(v)
		return nil
	case graphedge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GraphEdge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GraphEdgeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GraphEdgeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphEdgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GraphEdge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GraphEdgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(graphedge.FieldDstID) {
		fields = append(fields, graphedge.FieldDstID)
	}
	if m.FieldCleared(graphedge.FieldDstURI) {
		fields = append(fields, graphedge.FieldDstURI)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GraphEdgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GraphEdgeMutation) ClearField(name string) error {
	switch name {
	case graphedge.FieldDstID:
		m.ClearDstID()
		return nil
	case graphedge.FieldDstURI:
		m.ClearDstURI()
		return nil
	}
	return fmt.Errorf("unknown GraphEdge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GraphEdgeMutation) ResetField(name string) error {
	switch name {
	case graphedge.FieldSrcID:
		m.ResetSrcID()
		return nil
	case graphedge.FieldWorldID:
		m.ResetWorldID()
		return nil
	case graphedge.FieldBranch:
		m.ResetBranch()
		return nil
	case graphedge.FieldRel:
		m.ResetRel()
		return nil
	case graphedge.FieldDstID:
		m.ResetDstID()
		return nil
	case graphedge.FieldDstURI:
		m.ResetDstURI()
		return nil
	case graphedge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GraphEdge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GraphEdgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GraphEdgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GraphEdgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GraphEdgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GraphEdgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GraphEdgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GraphEdgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GraphEdge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GraphEdgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GraphEdge edge %s", name)
}

// GraphNodeMutation represents an operation that mutates the GraphNode nodes in the graph.
type GraphNodeMutation struct {
	config
	op             Op
	typ            string
	id             *int
	node_id        *uuid.UUID
	world_id       *uuid.UUID
	branch         *string
	emo_type       *string
	emo_version    *int
	addemo_version *int
	deleted        *bool
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*GraphNode, error)
	predicates     []predicate.GraphNode
}

var _ ent.Mutation = (*GraphNodeMutation)(nil)

// graphnodeOption allows management of the mutation configuration using functional options.
type graphnodeOption func(*GraphNodeMutation)

// newGraphNodeMutation creates new mutation for the GraphNode entity.
func newGraphNodeMutation(c config, op Op, opts ...graphnodeOption) *GraphNodeMutation {
	m := &GraphNodeMutation{
		config:        c,
		op:            op,
		typ:           TypeGraphNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGraphNodeID sets the ID field of the mutation.
func withGraphNodeID(id int) graphnodeOption {
	return func(m *GraphNodeMutation) {
		var (
			err   error
			once  sync.Once
			value *GraphNode
		)
		m.oldValue = func(ctx context.Context) (*GraphNode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GraphNode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGraphNode sets the old GraphNode of the mutation.
func withGraphNode(node *GraphNode) graphnodeOption {
	return func(m *GraphNodeMutation) {
		m.oldValue = func(context.Context) (*GraphNode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GraphNodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GraphNodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GraphNodeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GraphNodeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GraphNode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNodeID sets the "node_id" field.
func (m *GraphNodeMutation) SetNodeID(u uuid.UUID) {
	m.node_id = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *GraphNodeMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the GraphNode entity.
// If the GraphNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphNodeMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *GraphNodeMutation) ResetNodeID() {
	m.node_id = nil
}

// SetWorldID sets the "world_id" field.
func (m *GraphNodeMutation) SetWorldID(u uuid.UUID) {
	m.world_id = &u
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *GraphNodeMutation) WorldID() (r uuid.UUID, exists bool) {
	v := m.world_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the GraphNode entity.
// If the GraphNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphNodeMutation) OldWorldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *GraphNodeMutation) ResetWorldID() {
	m.world_id = nil
}

// SetBranch sets the "branch" field.
func (m *GraphNodeMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *GraphNodeMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the GraphNode entity.
// If the GraphNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphNodeMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *GraphNodeMutation) ResetBranch() {
	m.branch = nil
}

// SetEmoType sets the "emo_type" field.
func (m *GraphNodeMutation) SetEmoType(s string) {
	m.emo_type = &s
}

// EmoType returns the value of the "emo_type" field in the mutation.
func (m *GraphNodeMutation) EmoType() (r string, exists bool) {
	v := m.emo_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEmoType returns the old "emo_type" field's value of the GraphNode entity.
// If the GraphNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphNodeMutation) OldEmoType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmoType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmoType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmoType: %w", err)
	}
	return oldValue.EmoType, nil
}

// ResetEmoType resets all changes to the "emo_type" field.
func (m *GraphNodeMutation) ResetEmoType() {
	m.emo_type = nil
}

// SetEmoVersion sets the "emo_version" field.
func (m *GraphNodeMutation) SetEmoVersion(i int) {
	m.emo_version = &i
	m.addemo_version = nil
}

// EmoVersion returns the value of the "emo_version" field in the mutation.
func (m *GraphNodeMutation) EmoVersion() (r int, exists bool) {
	v := m.emo_version
	if v == nil {
		return
	}
	return *v, true
}

// OldEmoVersion returns the old "emo_version" field's value of the GraphNode entity.
// If the GraphNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphNodeMutation) OldEmoVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmoVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmoVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmoVersion: %w", err)
	}
	return oldValue.EmoVersion, nil
}

// AddEmoVersion adds i to the "emo_version" field.
func (m *GraphNodeMutation) AddEmoVersion(i int) {
	if m.addemo_version != nil {
		*m.addemo_version += i
	} else {
		m.addemo_version = &i
	}
}

// AddedEmoVersion returns the value that was added to the "emo_version" field in this mutation.
func (m *GraphNodeMutation) AddedEmoVersion() (r int, exists bool) {
	v := m.addemo_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetEmoVersion resets all changes to the "emo_version" field.
func (m *GraphNodeMutation) ResetEmoVersion() {
	m.emo_version = nil
	m.addemo_version = nil
}

// SetDeleted sets the "deleted" field.
func (m *GraphNodeMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *GraphNodeMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the GraphNode entity.
// If the GraphNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphNodeMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *GraphNodeMutation) ResetDeleted() {
	m.deleted = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GraphNodeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GraphNodeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GraphNode entity.
// If the GraphNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphNodeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GraphNodeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GraphNodeMutation builder.
func (m *GraphNodeMutation) Where(ps ...predicate.GraphNode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GraphNodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GraphNodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GraphNode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GraphNodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GraphNodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GraphNode).
func (m *GraphNodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GraphNodeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.node_id != nil {
		fields = append(fields, graphnode.FieldNodeID)
	}
	if m.world_id != nil {
		fields = append(fields, graphnode.FieldWorldID)
	}
	if m.branch != nil {
		fields = append(fields, graphnode.FieldBranch)
	}
	if m.emo_type != nil {
		fields = append(fields, graphnode.FieldEmoType)
	}
	if m.emo_version != nil {
		fields = append(fields, graphnode.FieldEmoVersion)
	}
	if m.deleted != nil {
		fields = append(fields, graphnode.FieldDeleted)
	}
	if m.updated_at != nil {
		fields = append(fields, graphnode.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GraphNodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case graphnode.FieldNodeID:
		return m.NodeID()
	case graphnode.FieldWorldID:
		return m.WorldID()
	case graphnode.FieldBranch:
		return m.Branch()
	case graphnode.FieldEmoType:
		return m.EmoType()
	case graphnode.FieldEmoVersion:
		return m.EmoVersion()
	case graphnode.FieldDeleted:
		return m.Deleted()
	case graphnode.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GraphNodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case graphnode.FieldNodeID:
		return m.OldNodeID(ctx)
	case graphnode.FieldWorldID:
		return m.OldWorldID(ctx)
	case graphnode.FieldBranch:
		return m.OldBranch(ctx)
	case graphnode.FieldEmoType:
		return m.OldEmoType(ctx)
	case graphnode.FieldEmoVersion:
		return m.OldEmoVersion(ctx)
	case graphnode.FieldDeleted:
		return m.OldDeleted(ctx)
	case graphnode.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GraphNode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphNodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case graphnode.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case graphnode.FieldWorldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case graphnode.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case graphnode.FieldEmoType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmoType(v)
		return nil
	case graphnode.FieldEmoVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmoVersion(v)
		return nil
	case graphnode.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	case graphnode.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GraphNode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GraphNodeMutation) AddedFields() []string {
	var fields []string
	if m.addemo_version != nil {
		fields = append(fields, graphnode.FieldEmoVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GraphNodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case graphnode.FieldEmoVersion:
		return m.AddedEmoVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphNodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case graphnode.FieldEmoVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEmoVersion(v)
		return nil
	}
	return fmt.Errorf("unknown GraphNode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GraphNodeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GraphNodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GraphNodeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GraphNode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GraphNodeMutation) ResetField(name string) error {
	switch name {
	case graphnode.FieldNodeID:
		m.ResetNodeID()
		return nil
	case graphnode.FieldWorldID:
		m.ResetWorldID()
		return nil
	case graphnode.FieldBranch:
		m.ResetBranch()
		return nil
	case graphnode.FieldEmoType:
		m.ResetEmoType()
		return nil
	case graphnode.FieldEmoVersion:
		m.ResetEmoVersion()
		return nil
	case graphnode.FieldDeleted:
		m.ResetDeleted()
		return nil
	case graphnode.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GraphNode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GraphNodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GraphNodeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GraphNodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GraphNodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GraphNodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GraphNodeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GraphNodeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GraphNode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GraphNodeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GraphNode edge %s", name)
}

// NoteMutation represents an operation that mutates the Note nodes in the graph.
type NoteMutation struct {
	config
	op            Op
	typ           string
	id            *int
	world_id      *uuid.UUID
	branch        *string
	note_id       *string
	title         *string
	body          *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Note, error)
	predicates    []predicate.Note
}

var _ ent.Mutation = (*NoteMutation)(nil)

// noteOption allows management of the mutation configuration using functional options.
type noteOption func(*NoteMutation)

// newNoteMutation creates new mutation for the Note entity.
func newNoteMutation(c config, op Op, opts ...noteOption) *NoteMutation {
	m := &NoteMutation{
		config:        c,
		op:            op,
		typ:           TypeNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNoteID sets the ID field of the mutation.
func withNoteID(id int) noteOption {
	return func(m *NoteMutation) {
		var (
			err   error
			once  sync.Once
			value *Note
		)
		m.oldValue = func(ctx context.Context) (*Note, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Note.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNote sets the old Note of the mutation.
func withNote(node *Note) noteOption {
	return func(m *NoteMutation) {
		m.oldValue = func(context.Context) (*Note, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NoteMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NoteMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Note.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorldID sets the "world_id" field.
func (m *NoteMutation) SetWorldID(u uuid.UUID) {
	m.world_id = &u
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *NoteMutation) WorldID() (r uuid.UUID, exists bool) {
	v := m.world_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldWorldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *NoteMutation) ResetWorldID() {
	m.world_id = nil
}

// SetBranch sets the "branch" field.
func (m *NoteMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *NoteMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *NoteMutation) ResetBranch() {
	m.branch = nil
}

// SetNoteID sets the "note_id" field.
func (m *NoteMutation) SetNoteID(s string) {
	m.note_id = &s
}

// NoteID returns the value of the "note_id" field in the mutation.
func (m *NoteMutation) NoteID() (r string, exists bool) {
	v := m.note_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNoteID returns the old "note_id" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldNoteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoteID: %w", err)
	}
	return oldValue.NoteID, nil
}

// ResetNoteID resets all changes to the "note_id" field.
func (m *NoteMutation) ResetNoteID() {
	m.note_id = nil
}

// SetTitle sets the "title" field.
func (m *NoteMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NoteMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NoteMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *NoteMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NoteMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *NoteMutation) ResetBody() {
	m.body = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NoteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NoteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NoteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the NoteMutation builder.
func (m *NoteMutation) Where(ps ...predicate.Note) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Note, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Note).
func (m *NoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NoteMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.world_id != nil {
		fields = append(fields, note.FieldWorldID)
	}
	if m.branch != nil {
		fields = append(fields, note.FieldBranch)
	}
	if m.note_id != nil {
		fields = append(fields, note.FieldNoteID)
	}
	if m.title != nil {
		fields = append(fields, note.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, note.FieldBody)
	}
	if m.created_at != nil {
		fields = append(fields, note.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, note.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case note.FieldWorldID:
		return m.WorldID()
	case note.FieldBranch:
		return m.Branch()
	case note.FieldNoteID:
		return m.NoteID()
	case note.FieldTitle:
		return m.Title()
	case note.FieldBody:
		return m.Body()
	case note.FieldCreatedAt:
		return m.CreatedAt()
	case note.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case note.FieldWorldID:
		return m.OldWorldID(ctx)
	case note.FieldBranch:
		return m.OldBranch(ctx)
	case note.FieldNoteID:
		return m.OldNoteID(ctx)
	case note.FieldTitle:
		return m.OldTitle(ctx)
	case note.FieldBody:
		return m.OldBody(ctx)
	case note.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case note.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Note field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case note.FieldWorldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case note.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case note.FieldNoteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoteID(v)
		return nil
	case note.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case note.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case note.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case note.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Note field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Note numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NoteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NoteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Note nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NoteMutation) ResetField(name string) error {
	switch name {
	case note.FieldWorldID:
		m.ResetWorldID()
		return nil
	case note.FieldBranch:
		m.ResetBranch()
		return nil
	case note.FieldNoteID:
		m.ResetNoteID()
		return nil
	case note.FieldTitle:
		m.ResetTitle()
		return nil
	case note.FieldBody:
		m.ResetBody()
		return nil
	case note.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case note.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Note field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NoteMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NoteMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NoteMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Note unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NoteMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Note edge %s", name)
}

// NoteLinkMutation represents an operation that mutates the NoteLink nodes in the graph.
type NoteLinkMutation struct {
	config
	op            Op
	typ           string
	id            *int
	world_id      *uuid.UUID
	branch        *string
	src_id        *string
	dst_id        *string
	link_type     *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*NoteLink, error)
	predicates    []predicate.NoteLink
}

var _ ent.Mutation = (*NoteLinkMutation)(nil)

// notelinkOption allows management of the mutation configuration using functional options.
type notelinkOption func(*NoteLinkMutation)

// newNoteLinkMutation creates new mutation for the NoteLink entity.
func newNoteLinkMutation(c config, op Op, opts ...notelinkOption) *NoteLinkMutation {
	m := &NoteLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeNoteLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNoteLinkID sets the ID field of the mutation.
func withNoteLinkID(id int) notelinkOption {
	return func(m *NoteLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *NoteLink
		)
		m.oldValue = func(ctx context.Context) (*NoteLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NoteLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNoteLink sets the old NoteLink of the mutation.
func withNoteLink(node *NoteLink) notelinkOption {
	return func(m *NoteLinkMutation) {
		m.oldValue = func(context.Context) (*NoteLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NoteLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NoteLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NoteLinkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NoteLinkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NoteLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorldID sets the "world_id" field.
func (m *NoteLinkMutation) SetWorldID(u uuid.UUID) {
	m.world_id = &u
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *NoteLinkMutation) WorldID() (r uuid.UUID, exists bool) {
	v := m.world_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the NoteLink entity.
// If the NoteLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteLinkMutation) OldWorldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *NoteLinkMutation) ResetWorldID() {
	m.world_id = nil
}

// SetBranch sets the "branch" field.
func (m *NoteLinkMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *NoteLinkMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the NoteLink entity.
// If the NoteLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteLinkMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *NoteLinkMutation) ResetBranch() {
	m.branch = nil
}

// SetSrcID sets the "src_id" field.
func (m *NoteLinkMutation) SetSrcID(s string) {
	m.src_id = &s
}

// SrcID returns the value of the "src_id" field in the mutation.
func (m *NoteLinkMutation) SrcID() (r string, exists bool) {
	v := m.src_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSrcID returns the old "src_id" field's value of the NoteLink entity.
// If the NoteLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteLinkMutation) OldSrcID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSrcID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSrcID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSrcID: %w", err)
	}
	return oldValue.SrcID, nil
}

// ResetSrcID resets all changes to the "src_id" field.
func (m *NoteLinkMutation) ResetSrcID() {
	m.src_id = nil
}

// SetDstID sets the "dst_id" field.
func (m *NoteLinkMutation) SetDstID(s string) {
	m.dst_id = &s
}

// DstID returns the value of the "dst_id" field in the mutation.
func (m *NoteLinkMutation) DstID() (r string, exists bool) {
	v := m.dst_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDstID returns the old "dst_id" field's value of the NoteLink entity.
// If the NoteLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteLinkMutation) OldDstID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDstID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDstID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDstID: %w", err)
	}
	return oldValue.DstID, nil
}

// ResetDstID resets all changes to the "dst_id" field.
func (m *NoteLinkMutation) ResetDstID() {
	m.dst_id = nil
}

// SetLinkType sets the "link_type" field.
func (m *NoteLinkMutation) SetLinkType(s string) {
	m.link_type = &s
}

// LinkType returns the value of the "link_type" field in the mutation.
func (m *NoteLinkMutation) LinkType() (r string, exists bool) {
	v := m.link_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkType returns the old "link_type" field's value of the NoteLink entity.
// If the NoteLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteLinkMutation) OldLinkType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkType: %w", err)
	}
	return oldValue.LinkType, nil
}

// ResetLinkType resets all changes to the "link_type" field.
func (m *NoteLinkMutation) ResetLinkType() {
	m.link_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NoteLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NoteLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NoteLink entity.
// If the NoteLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NoteLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NoteLinkMutation builder.
func (m *NoteLinkMutation) Where(ps ...predicate.NoteLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NoteLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NoteLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NoteLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NoteLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NoteLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NoteLink).
func (m *NoteLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NoteLinkMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.world_id != nil {
		fields = append(fields, notelink.FieldWorldID)
	}
	if m.branch != nil {
		fields = append(fields, notelink.FieldBranch)
	}
	if m.src_id != nil {
		fields = append(fields, notelink.FieldSrcID)
	}
	if m.dst_id != nil {
		fields = append(fields, notelink.FieldDstID)
	}
	if m.link_type != nil {
		fields = append(fields, notelink.FieldLinkType)
	}
	if m.created_at != nil {
		fields = append(fields, notelink.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NoteLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notelink.FieldWorldID:
		return m.WorldID()
	case notelink.FieldBranch:
		return m.Branch()
	case notelink.FieldSrcID:
		return m.SrcID()
	case notelink.FieldDstID:
		return m.DstID()
	case notelink.FieldLinkType:
		return m.LinkType()
	case notelink.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NoteLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notelink.FieldWorldID:
		return m.OldWorldID(ctx)
	case notelink.FieldBranch:
		return m.OldBranch(ctx)
	case notelink.FieldSrcID:
		return m.OldSrcID(ctx)
	case notelink.FieldDstID:
		return m.OldDstID(ctx)
	case notelink.FieldLinkType:
		return m.OldLinkType(ctx)
	case notelink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NoteLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NoteLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notelink.FieldWorldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case notelink.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case notelink.FieldSrcID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSrcID(v)
		return nil
	case notelink.FieldDstID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDstID(v)
		return nil
	case notelink.FieldLinkType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkType(v)
		return nil
	case notelink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NoteLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NoteLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NoteLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NoteLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NoteLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NoteLinkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NoteLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NoteLinkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown NoteLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NoteLinkMutation) ResetField(name string) error {
	switch name {
	case notelink.FieldWorldID:
		m.ResetWorldID()
		return nil
	case notelink.FieldBranch:
		m.ResetBranch()
		return nil
	case notelink.FieldSrcID:
		m.ResetSrcID()
		return nil
	case notelink.FieldDstID:
		m.ResetDstID()
		return nil
	case notelink.FieldLinkType:
		m.ResetLinkType()
		return nil
	case notelink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown NoteLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NoteLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NoteLinkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NoteLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NoteLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NoteLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NoteLinkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NoteLinkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NoteLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NoteLinkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NoteLink edge %s", name)
}

// NoteTagMutation represents an operation that mutates the NoteTag nodes in the graph.
type NoteTagMutation struct {
	config
	op            Op
	typ           string
	id            *int
	world_id      *uuid.UUID
	branch        *string
	note_id       *string
	tag           *string
	applied_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*NoteTag, error)
	predicates    []predicate.NoteTag
}

var _ ent.Mutation = (*NoteTagMutation)(nil)

// notetagOption allows management of the mutation configuration using functional options.
type notetagOption func(*NoteTagMutation)

// newNoteTagMutation creates new mutation for the NoteTag entity.
func newNoteTagMutation(c config, op Op, opts ...notetagOption) *NoteTagMutation {
	m := &NoteTagMutation{
		config:        c,
		op:            op,
		typ:           TypeNoteTag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNoteTagID sets the ID field of the mutation.
func withNoteTagID(id int) notetagOption {
	return func(m *NoteTagMutation) {
		var (
			err   error
			once  sync.Once
			value *NoteTag
		)
		m.oldValue = func(ctx context.Context) (*NoteTag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NoteTag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNoteTag sets the old NoteTag of the mutation.
func withNoteTag(node *NoteTag) notetagOption {
	return func(m *NoteTagMutation) {
		m.oldValue = func(context.Context) (*NoteTag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NoteTagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NoteTagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NoteTagMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NoteTagMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NoteTag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorldID sets the "world_id" field.
func (m *NoteTagMutation) SetWorldID(u uuid.UUID) {
	m.world_id = &u
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *NoteTagMutation) WorldID() (r uuid.UUID, exists bool) {
	v := m.world_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the NoteTag entity.
// If the NoteTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteTagMutation) OldWorldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *NoteTagMutation) ResetWorldID() {
	m.world_id = nil
}

// SetBranch sets the "branch" field.
func (m *NoteTagMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *NoteTagMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the NoteTag entity.
// If the NoteTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteTagMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *NoteTagMutation) ResetBranch() {
	m.branch = nil
}

// SetNoteID sets the "note_id" field.
func (m *NoteTagMutation) SetNoteID(s string) {
	m.note_id = &s
}

// NoteID returns the value of the "note_id" field in the mutation.
func (m *NoteTagMutation) NoteID() (r string, exists bool) {
	v := m.note_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNoteID returns the old "note_id" field's value of the NoteTag entity.
// If the NoteTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteTagMutation) OldNoteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoteID: %w", err)
	}
	return oldValue.NoteID, nil
}

// ResetNoteID resets all changes to the "note_id" field.
func (m *NoteTagMutation) ResetNoteID() {
	m.note_id = nil
}

// SetTag sets the "tag" field.
func (m *NoteTagMutation) SetTag(s string) {
	m.tag = &s
}

// Tag returns the value of the "tag" field in the mutation.
func (m *NoteTagMutation) Tag() (r string, exists bool) {
	v := m.tag
	if v == nil {
		return
	}
	return *v, true
}

// OldTag returns the old "tag" field's value of the NoteTag entity.
// If the NoteTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteTagMutation) OldTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTag: %w", err)
	}
	return oldValue.Tag, nil
}

// ResetTag resets all changes to the "tag" field.
func (m *NoteTagMutation) ResetTag() {
	m.tag = nil
}

// SetAppliedAt sets the "applied_at" field.
func (m *NoteTagMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *NoteTagMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the NoteTag entity.
// If the NoteTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteTagMutation) OldAppliedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *NoteTagMutation) ResetAppliedAt() {
	m.applied_at = nil
}

// Where appends a list predicates to the NoteTagMutation builder.
func (m *NoteTagMutation) Where(ps ...predicate.NoteTag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NoteTagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NoteTagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NoteTag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NoteTagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NoteTagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NoteTag).
func (m *NoteTagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NoteTagMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.world_id != nil {
		fields = append(fields, notetag.FieldWorldID)
	}
	if m.branch != nil {
		fields = append(fields, notetag.FieldBranch)
	}
	if m.note_id != nil {
		fields = append(fields, notetag.FieldNoteID)
	}
	if m.tag != nil {
		fields = append(fields, notetag.FieldTag)
	}
	if m.applied_at != nil {
		fields = append(fields, notetag.FieldAppliedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NoteTagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notetag.FieldWorldID:
		return m.WorldID()
	case notetag.FieldBranch:
		return m.Branch()
	case notetag.FieldNoteID:
		return m.NoteID()
	case notetag.FieldTag:
		return m.Tag()
	case notetag.FieldAppliedAt:
		return m.AppliedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NoteTagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notetag.FieldWorldID:
		return m.OldWorldID(ctx)
	case notetag.FieldBranch:
		return m.OldBranch(ctx)
	case notetag.FieldNoteID:
		return m.OldNoteID(ctx)
	case notetag.FieldTag:
		return m.OldTag(ctx)
	case notetag.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NoteTag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NoteTagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notetag.FieldWorldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case notetag.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case notetag.FieldNoteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoteID(v)
		return nil
	case notetag.FieldTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTag(v)
		return nil
	case notetag.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NoteTag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NoteTagMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NoteTagMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NoteTagMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NoteTag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NoteTagMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NoteTagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NoteTagMutation) ClearField(name string) error {
	return fmt.Errorf("unknown NoteTag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NoteTagMutation) ResetField(name string) error {
	switch name {
	case notetag.FieldWorldID:
		m.ResetWorldID()
		return nil
	case notetag.FieldBranch:
		m.ResetBranch()
		return nil
	case notetag.FieldNoteID:
		m.ResetNoteID()
		return nil
	case notetag.FieldTag:
		m.ResetTag()
		return nil
	case notetag.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	}
	return fmt.Errorf("unknown NoteTag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NoteTagMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NoteTagMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NoteTagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NoteTagMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NoteTagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NoteTagMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NoteTagMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NoteTag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NoteTagMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NoteTag edge %s", name)
}

// OutboxEntryMutation represents an operation that mutates the OutboxEntry nodes in the graph.
type OutboxEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	event_id      *uuid.UUID
	world_id      *uuid.UUID
	branch        *string
	kind          *string
	envelope      *map[string]interface{}
	payload_hash  *string
	received_at   *time.Time
	published_at  *time.Time
	attempts      *int
	addattempts   *int
	last_error    *string
	next_retry_at *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OutboxEntry, error)
	predicates    []predicate.OutboxEntry
}

var _ ent.Mutation = (*OutboxEntryMutation)(nil)

// outboxentryOption allows management of the mutation configuration using functional options.
type outboxentryOption func(*OutboxEntryMutation)

// newOutboxEntryMutation creates new mutation for the OutboxEntry entity.
func newOutboxEntryMutation(c config, op Op, opts ...outboxentryOption) *OutboxEntryMutation {
	m := &OutboxEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeOutboxEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutboxEntryID sets the ID field of the mutation.
func withOutboxEntryID(id int64) outboxentryOption {
	return func(m *OutboxEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *OutboxEntry
		)
		m.oldValue = func(ctx context.Context) (*OutboxEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutboxEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutboxEntry sets the old OutboxEntry of the mutation.
func withOutboxEntry(node *OutboxEntry) outboxentryOption {
	return func(m *OutboxEntryMutation) {
		m.oldValue = func(context.Context) (*OutboxEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutboxEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutboxEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OutboxEntry entities.
func (m *OutboxEntryMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutboxEntryMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutboxEntryMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutboxEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *OutboxEntryMutation) SetEventID(u uuid.UUID) {
	m.event_id = &u
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *OutboxEntryMutation) EventID() (r uuid.UUID, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldEventID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *OutboxEntryMutation) ResetEventID() {
	m.event_id = nil
}

// SetWorldID sets the "world_id" field.
func (m *OutboxEntryMutation) SetWorldID(u uuid.UUID) {
	m.world_id = &u
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *OutboxEntryMutation) WorldID() (r uuid.UUID, exists bool) {
	v := m.world_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldWorldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *OutboxEntryMutation) ResetWorldID() {
	m.world_id = nil
}

// SetBranch sets the "branch" field.
func (m *OutboxEntryMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *OutboxEntryMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *OutboxEntryMutation) ResetBranch() {
	m.branch = nil
}

// SetKind sets the "kind" field.
func (m *OutboxEntryMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *OutboxEntryMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *OutboxEntryMutation) ResetKind() {
	m.kind = nil
}

// SetEnvelope sets the "envelope" field.
func (m *OutboxEntryMutation) SetEnvelope(value map[string]interface{}) {
	m.envelope = &value
}

// Envelope returns the value of the "envelope" field in the mutation.
func (m *OutboxEntryMutation) Envelope() (r map[string]interface{}, exists bool) {
	v := m.envelope
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvelope returns the old "envelope" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldEnvelope(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvelope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvelope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvelope: %w", err)
	}
	return oldValue.Envelope, nil
}

// ResetEnvelope resets all changes to the "envelope" field.
func (m *OutboxEntryMutation) ResetEnvelope() {
	m.envelope = nil
}

// SetPayloadHash sets the "payload_hash" field.
func (m *OutboxEntryMutation) SetPayloadHash(s string) {
	m.payload_hash = &s
}

// PayloadHash returns the value of the "payload_hash" field in the mutation.
func (m *OutboxEntryMutation) PayloadHash() (r string, exists bool) {
	v := m.payload_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadHash returns the old "payload_hash" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldPayloadHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadHash: %w", err)
	}
	return oldValue.PayloadHash, nil
}

// ResetPayloadHash resets all changes to the "payload_hash" field.
func (m *OutboxEntryMutation) ResetPayloadHash() {
	m.payload_hash = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *OutboxEntryMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *OutboxEntryMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *OutboxEntryMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *OutboxEntryMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *OutboxEntryMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *OutboxEntryMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[outboxentry.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *OutboxEntryMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[outboxentry.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *OutboxEntryMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, outboxentry.FieldPublishedAt)
}

// SetAttempts sets the "attempts" field.
func (m *OutboxEntryMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *OutboxEntryMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *OutboxEntryMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *OutboxEntryMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *OutboxEntryMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastError sets the "last_error" field.
func (m *OutboxEntryMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *OutboxEntryMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *OutboxEntryMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[outboxentry.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *OutboxEntryMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[outboxentry.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *OutboxEntryMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, outboxentry.FieldLastError)
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *OutboxEntryMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *OutboxEntryMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *OutboxEntryMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[outboxentry.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *OutboxEntryMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[outboxentry.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *OutboxEntryMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, outboxentry.FieldNextRetryAt)
}

// Where appends a list predicates to the OutboxEntryMutation builder.
func (m *OutboxEntryMutation) Where(ps ...predicate.OutboxEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutboxEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutboxEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutboxEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutboxEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutboxEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutboxEntry).
func (m *OutboxEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutboxEntryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.event_id != nil {
		fields = append(fields, outboxentry.FieldEventID)
	}
	if m.world_id != nil {
		fields = append(fields, outboxentry.FieldWorldID)
	}
	if m.branch != nil {
		fields = append(fields, outboxentry.FieldBranch)
	}
	if m.kind != nil {
		fields = append(fields, outboxentry.FieldKind)
	}
	if m.envelope != nil {
		fields = append(fields, outboxentry.FieldEnvelope)
	}
	if m.payload_hash != nil {
		fields = append(fields, outboxentry.FieldPayloadHash)
	}
	if m.received_at != nil {
		fields = append(fields, outboxentry.FieldReceivedAt)
	}
	if m.published_at != nil {
		fields = append(fields, outboxentry.FieldPublishedAt)
	}
	if m.attempts != nil {
		fields = append(fields, outboxentry.FieldAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, outboxentry.FieldLastError)
	}
	if m.next_retry_at != nil {
		fields = append(fields, outboxentry.FieldNextRetryAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutboxEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outboxentry.FieldEventID:
		return m.EventID()
	case outboxentry.FieldWorldID:
		return m.WorldID()
	case outboxentry.FieldBranch:
		return m.Branch()
	case outboxentry.FieldKind:
		return m.Kind()
	case outboxentry.FieldEnvelope:
		return m.Envelope()
	case outboxentry.FieldPayloadHash:
		return m.PayloadHash()
	case outboxentry.FieldReceivedAt:
		return m.ReceivedAt()
	case outboxentry.FieldPublishedAt:
		return m.PublishedAt()
	case outboxentry.FieldAttempts:
		return m.Attempts()
	case outboxentry.FieldLastError:
		return m.LastError()
	case outboxentry.FieldNextRetryAt:
		return m.NextRetryAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutboxEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outboxentry.FieldEventID:
		return m.OldEventID(ctx)
	case outboxentry.FieldWorldID:
		return m.OldWorldID(ctx)
	case outboxentry.FieldBranch:
		return m.OldBranch(ctx)
	case outboxentry.FieldKind:
		return m.OldKind(ctx)
	case outboxentry.FieldEnvelope:
		return m.OldEnvelope(ctx)
	case outboxentry.FieldPayloadHash:
		return m.OldPayloadHash(ctx)
	case outboxentry.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case outboxentry.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case outboxentry.FieldAttempts:
		return m.OldAttempts(ctx)
	case outboxentry.FieldLastError:
		return m.OldLastError(ctx)
	case outboxentry.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	}
	return nil, fmt.Errorf("unknown OutboxEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outboxentry.FieldEventID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case outboxentry.FieldWorldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case outboxentry.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case outboxentry.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case outboxentry.FieldEnvelope:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvelope(v)
		return nil
	case outboxentry.FieldPayloadHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadHash(v)
		return nil
	case outboxentry.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case outboxentry.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case outboxentry.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case outboxentry.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case outboxentry.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutboxEntryMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, outboxentry.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutboxEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case outboxentry.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case outboxentry.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutboxEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outboxentry.FieldPublishedAt) {
		fields = append(fields, outboxentry.FieldPublishedAt)
	}
	if m.FieldCleared(outboxentry.FieldLastError) {
		fields = append(fields, outboxentry.FieldLastError)
	}
	if m.FieldCleared(outboxentry.FieldNextRetryAt) {
		fields = append(fields, outboxentry.FieldNextRetryAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutboxEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutboxEntryMutation) ClearField(name string) error {
	switch name {
	case outboxentry.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case outboxentry.FieldLastError:
		m.ClearLastError()
		return nil
	case outboxentry.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutboxEntryMutation) ResetField(name string) error {
	switch name {
	case outboxentry.FieldEventID:
		m.ResetEventID()
		return nil
	case outboxentry.FieldWorldID:
		m.ResetWorldID()
		return nil
	case outboxentry.FieldBranch:
		m.ResetBranch()
		return nil
	case outboxentry.FieldKind:
		m.ResetKind()
		return nil
	case outboxentry.FieldEnvelope:
		m.ResetEnvelope()
		return nil
	case outboxentry.FieldPayloadHash:
		m.ResetPayloadHash()
		return nil
	case outboxentry.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case outboxentry.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case outboxentry.FieldAttempts:
		m.ResetAttempts()
		return nil
	case outboxentry.FieldLastError:
		m.ResetLastError()
		return nil
	case outboxentry.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutboxEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutboxEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutboxEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutboxEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutboxEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutboxEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutboxEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OutboxEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutboxEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OutboxEntry edge %s", name)
}

// WatermarkMutation represents an operation that mutates the Watermark nodes in the graph.
type WatermarkMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	projector_name        *string
	world_id              *uuid.UUID
	branch                *string
	last_processed_seq    *int64
	addlast_processed_seq *int64
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Watermark, error)
	predicates            []predicate.Watermark
}

var _ ent.Mutation = (*WatermarkMutation)(nil)

// watermarkOption allows management of the mutation configuration using functional options.
type watermarkOption func(*WatermarkMutation)

// newWatermarkMutation creates new mutation for the Watermark entity.
func newWatermarkMutation(c config, op Op, opts ...watermarkOption) *WatermarkMutation {
	m := &WatermarkMutation{
		config:        c,
		op:            op,
		typ:           TypeWatermark,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWatermarkID sets the ID field of the mutation.
func withWatermarkID(id int) watermarkOption {
	return func(m *WatermarkMutation) {
		var (
			err   error
			once  sync.Once
			value *Watermark
		)
		m.oldValue = func(ctx context.Context) (*Watermark, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Watermark.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWatermark sets the old Watermark of the mutation.
func withWatermark(node *Watermark) watermarkOption {
	return func(m *WatermarkMutation) {
		m.oldValue = func(context.Context) (*Watermark, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WatermarkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WatermarkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WatermarkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WatermarkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Watermark.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectorName sets the "projector_name" field.
func (m *WatermarkMutation) SetProjectorName(s string) {
	m.projector_name = &s
}

// ProjectorName returns the value of the "projector_name" field in the mutation.
func (m *WatermarkMutation) ProjectorName() (r string, exists bool) {
	v := m.projector_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectorName returns the old "projector_name" field's value of the Watermark entity.
// If the Watermark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatermarkMutation) OldProjectorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectorName: %w", err)
	}
	return oldValue.ProjectorName, nil
}

// ResetProjectorName resets all changes to the "projector_name" field.
func (m *WatermarkMutation) ResetProjectorName() {
	m.projector_name = nil
}

// SetWorldID sets the "world_id" field.
func (m *WatermarkMutation) SetWorldID(u uuid.UUID) {
	m.world_id = &u
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *WatermarkMutation) WorldID() (r uuid.UUID, exists bool) {
	v := m.world_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the Watermark entity.
// If the Watermark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatermarkMutation) OldWorldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *WatermarkMutation) ResetWorldID() {
	m.world_id = nil
}

// SetBranch sets the "branch" field.
func (m *WatermarkMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *WatermarkMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the Watermark entity.
// If the Watermark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatermarkMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *WatermarkMutation) ResetBranch() {
	m.branch = nil
}

// SetLastProcessedSeq sets the "last_processed_seq" field.
func (m *WatermarkMutation) SetLastProcessedSeq(i int64) {
	m.last_processed_seq = &i
	m.addlast_processed_seq = nil
}

// LastProcessedSeq returns the value of the "last_processed_seq" field in the mutation.
func (m *WatermarkMutation) LastProcessedSeq() (r int64, exists bool) {
	v := m.last_processed_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProcessedSeq returns the old "last_processed_seq" field's value of the Watermark entity.
// If the Watermark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatermarkMutation) OldLastProcessedSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProcessedSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProcessedSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProcessedSeq: %w", err)
	}
	return oldValue.LastProcessedSeq, nil
}

// AddLastProcessedSeq adds i to the "last_processed_seq" field.
func (m *WatermarkMutation) AddLastProcessedSeq(i int64) {
	if m.addlast_processed_seq != nil {
		*m.addlast_processed_seq += i
	} else {
		m.addlast_processed_seq = &i
	}
}

// AddedLastProcessedSeq returns the value that was added to the "last_processed_seq" field in this mutation.
func (m *WatermarkMutation) AddedLastProcessedSeq() (r int64, exists bool) {
	v := m.addlast_processed_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastProcessedSeq resets all changes to the "last_processed_seq" field.
func (m *WatermarkMutation) ResetLastProcessedSeq() {
	m.last_processed_seq = nil
	m.addlast_processed_seq = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WatermarkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WatermarkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Watermark entity.
// If the Watermark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatermarkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WatermarkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WatermarkMutation builder.
func (m *WatermarkMutation) Where(ps ...predicate.Watermark) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WatermarkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WatermarkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Watermark, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WatermarkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WatermarkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Watermark).
func (m *WatermarkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WatermarkMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.projector_name != nil {
		fields = append(fields, watermark.FieldProjectorName)
	}
	if m.world_id != nil {
		fields = append(fields, watermark.FieldWorldID)
	}
	if m.branch != nil {
		fields = append(fields, watermark.FieldBranch)
	}
	if m.last_processed_seq != nil {
		fields = append(fields, watermark.FieldLastProcessedSeq)
	}
	if m.updated_at != nil {
		fields = append(fields, watermark.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WatermarkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case watermark.FieldProjectorName:
		return m.ProjectorName()
	case watermark.FieldWorldID:
		return m.WorldID()
	case watermark.FieldBranch:
		return m.Branch()
	case watermark.FieldLastProcessedSeq:
		return m.LastProcessedSeq()
	case watermark.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WatermarkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case watermark.FieldProjectorName:
		return m.OldProjectorName(ctx)
	case watermark.FieldWorldID:
		return m.OldWorldID(ctx)
	case watermark.FieldBranch:
		return m.OldBranch(ctx)
	case watermark.FieldLastProcessedSeq:
		return m.OldLastProcessedSeq(ctx)
	case watermark.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Watermark field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WatermarkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case watermark.FieldProjectorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectorName(v)
		return nil
	case watermark.FieldWorldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case watermark.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case watermark.FieldLastProcessedSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProcessedSeq(v)
		return nil
	case watermark.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Watermark field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WatermarkMutation) AddedFields() []string {
	var fields []string
	if m.addlast_processed_seq != nil {
		fields = append(fields, watermark.FieldLastProcessedSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WatermarkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case watermark.FieldLastProcessedSeq:
		return m.AddedLastProcessedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WatermarkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case watermark.FieldLastProcessedSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastProcessedSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Watermark numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WatermarkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WatermarkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WatermarkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Watermark nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WatermarkMutation) ResetField(name string) error {
	switch name {
	case watermark.FieldProjectorName:
		m.ResetProjectorName()
		return nil
	case watermark.FieldWorldID:
		m.ResetWorldID()
		return nil
	case watermark.FieldBranch:
		m.ResetBranch()
		return nil
	case watermark.FieldLastProcessedSeq:
		m.ResetLastProcessedSeq()
		return nil
	case watermark.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Watermark field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WatermarkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WatermarkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WatermarkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WatermarkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WatermarkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WatermarkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WatermarkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Watermark unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WatermarkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Watermark edge %s", name)
}

// WorldEventMutation represents an operation that mutates the WorldEvent nodes in the graph.
type WorldEventMutation struct {
	config
	op              Op
	typ             string
	id              *int64
	event_id        *uuid.UUID
	world_id        *uuid.UUID
	branch          *string
	kind            *string
	envelope        *map[string]interface{}
	occurred_at     *time.Time
	received_at     *time.Time
	payload_hash    *string
	idempotency_key *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*WorldEvent, error)
	predicates      []predicate.WorldEvent
}

var _ ent.Mutation = (*WorldEventMutation)(nil)

// worldeventOption allows management of the mutation configuration using functional options.
type worldeventOption func(*WorldEventMutation)

// newWorldEventMutation creates new mutation for the WorldEvent entity.
func newWorldEventMutation(c config, op Op, opts ...worldeventOption) *WorldEventMutation {
	m := &WorldEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWorldEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorldEventID sets the ID field of the mutation.
func withWorldEventID(id int64) worldeventOption {
	return func(m *WorldEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WorldEvent
		)
		m.oldValue = func(ctx context.Context) (*WorldEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorldEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorldEvent sets the old WorldEvent of the mutation.
func withWorldEvent(node *WorldEvent) worldeventOption {
	return func(m *WorldEventMutation) {
		m.oldValue = func(context.Context) (*WorldEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorldEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorldEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorldEvent entities.
func (m *WorldEventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorldEventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorldEventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorldEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *WorldEventMutation) SetEventID(u uuid.UUID) {
	m.event_id = &u
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *WorldEventMutation) EventID() (r uuid.UUID, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the WorldEvent entity.
// If the WorldEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldEventMutation) OldEventID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *WorldEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetWorldID sets the "world_id" field.
func (m *WorldEventMutation) SetWorldID(u uuid.UUID) {
	m.world_id = &u
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *WorldEventMutation) WorldID() (r uuid.UUID, exists bool) {
	v := m.world_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the WorldEvent entity.
// If the WorldEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldEventMutation) OldWorldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *WorldEventMutation) ResetWorldID() {
	m.world_id = nil
}

// SetBranch sets the "branch" field.
func (m *WorldEventMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *WorldEventMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the WorldEvent entity.
// If the WorldEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldEventMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ResetBranch resets all changes to the "branch" field.
func (m *WorldEventMutation) ResetBranch() {
	m.branch = nil
}

// SetKind sets the "kind" field.
func (m *WorldEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *WorldEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the WorldEvent entity.
// If the WorldEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *WorldEventMutation) ResetKind() {
	m.kind = nil
}

// SetEnvelope sets the "envelope" field.
func (m *WorldEventMutation) SetEnvelope(value map[string]interface{}) {
	m.envelope = &value
}

// Envelope returns the value of the "envelope" field in the mutation.
func (m *WorldEventMutation) Envelope() (r map[string]interface{}, exists bool) {
	v := m.envelope
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvelope returns the old "envelope" field's value of the WorldEvent entity.
// If the WorldEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldEventMutation) OldEnvelope(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvelope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvelope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvelope: %w", err)
	}
	return oldValue.Envelope, nil
}

// ResetEnvelope resets all changes to the "envelope" field.
func (m *WorldEventMutation) ResetEnvelope() {
	m.envelope = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *WorldEventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *WorldEventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the WorldEvent entity.
// If the WorldEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldEventMutation) OldOccurredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ClearOccurredAt clears the value of the "occurred_at" field.
func (m *WorldEventMutation) ClearOccurredAt() {
	m.occurred_at = nil
	m.clearedFields[worldevent.FieldOccurredAt] = struct{}{}
}

// OccurredAtCleared returns if the "occurred_at" field was cleared in this mutation.
func (m *WorldEventMutation) OccurredAtCleared() bool {
	_, ok := m.clearedFields[worldevent.FieldOccurredAt]
	return ok
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *WorldEventMutation) ResetOccurredAt() {
	m.occurred_at = nil
	delete(m.clearedFields, worldevent.FieldOccurredAt)
}

// SetReceivedAt sets the "received_at" field.
func (m *WorldEventMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *WorldEventMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the WorldEvent entity.
// If the WorldEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldEventMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *WorldEventMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetPayloadHash sets the "payload_hash" field.
func (m *WorldEventMutation) SetPayloadHash(s string) {
	m.payload_hash = &s
}

// PayloadHash returns the value of the "payload_hash" field in the mutation.
func (m *WorldEventMutation) PayloadHash() (r string, exists bool) {
	v := m.payload_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadHash returns the old "payload_hash" field's value of the WorldEvent entity.
// If the WorldEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldEventMutation) OldPayloadHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadHash: %w", err)
	}
	return oldValue.PayloadHash, nil
}

// ResetPayloadHash resets all changes to the "payload_hash" field.
func (m *WorldEventMutation) ResetPayloadHash() {
	m.payload_hash = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *WorldEventMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *WorldEventMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the WorldEvent entity.
// If the WorldEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldEventMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *WorldEventMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[worldevent.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *WorldEventMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[worldevent.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *WorldEventMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, worldevent.FieldIdempotencyKey)
}

// Where appends a list predicates to the WorldEventMutation builder.
func (m *WorldEventMutation) Where(ps ...predicate.WorldEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorldEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorldEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorldEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorldEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorldEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorldEvent).
func (m *WorldEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorldEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.event_id != nil {
		fields = append(fields, worldevent.FieldEventID)
	}
	if m.world_id != nil {
		fields = append(fields, worldevent.FieldWorldID)
	}
	if m.branch != nil {
		fields = append(fields, worldevent.FieldBranch)
	}
	if m.kind != nil {
		fields = append(fields, worldevent.FieldKind)
	}
	if m.envelope != nil {
		fields = append(fields, worldevent.FieldEnvelope)
	}
	if m.occurred_at != nil {
		fields = append(fields, worldevent.FieldOccurredAt)
	}
	if m.received_at != nil {
		fields = append(fields, worldevent.FieldReceivedAt)
	}
	if m.payload_hash != nil {
		fields = append(fields, worldevent.FieldPayloadHash)
	}
	if m.idempotency_key != nil {
		fields = append(fields, worldevent.FieldIdempotencyKey)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorldEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case worldevent.FieldEventID:
		return m.EventID()
	case worldevent.FieldWorldID:
		return m.WorldID()
	case worldevent.FieldBranch:
		return m.Branch()
	case worldevent.FieldKind:
		return m.Kind()
	case worldevent.FieldEnvelope:
		return m.Envelope()
	case worldevent.FieldOccurredAt:
		return m.OccurredAt()
	case worldevent.FieldReceivedAt:
		return m.ReceivedAt()
	case worldevent.FieldPayloadHash:
		return m.PayloadHash()
	case worldevent.FieldIdempotencyKey:
		return m.IdempotencyKey()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorldEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case worldevent.FieldEventID:
		return m.OldEventID(ctx)
	case worldevent.FieldWorldID:
		return m.OldWorldID(ctx)
	case worldevent.FieldBranch:
		return m.OldBranch(ctx)
	case worldevent.FieldKind:
		return m.OldKind(ctx)
	case worldevent.FieldEnvelope:
		return m.OldEnvelope(ctx)
	case worldevent.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case worldevent.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case worldevent.FieldPayloadHash:
		return m.OldPayloadHash(ctx)
	case worldevent.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	}
	return nil, fmt.Errorf("unknown WorldEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorldEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case worldevent.FieldEventID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case worldevent.FieldWorldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case worldevent.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case worldevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case worldevent.FieldEnvelope:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvelope(v)
		return nil
	case worldevent.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case worldevent.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case worldevent.FieldPayloadHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadHash(v)
		return nil
	case worldevent.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	}
	return fmt.Errorf("unknown WorldEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorldEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorldEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorldEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorldEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorldEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(worldevent.FieldOccurredAt) {
		fields = append(fields, worldevent.FieldOccurredAt)
	}
	if m.FieldCleared(worldevent.FieldIdempotencyKey) {
		fields = append(fields, worldevent.FieldIdempotencyKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorldEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorldEventMutation) ClearField(name string) error {
	switch name {
	case worldevent.FieldOccurredAt:
		m.ClearOccurredAt()
		return nil
	case worldevent.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	}
	return fmt.Errorf("unknown WorldEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorldEventMutation) ResetField(name string) error {
	switch name {
	case worldevent.FieldEventID:
		m.ResetEventID()
		return nil
	case worldevent.FieldWorldID:
		m.ResetWorldID()
		return nil
	case worldevent.FieldBranch:
		m.ResetBranch()
		return nil
	case worldevent.FieldKind:
		m.ResetKind()
		return nil
	case worldevent.FieldEnvelope:
		m.ResetEnvelope()
		return nil
	case worldevent.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case worldevent.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case worldevent.FieldPayloadHash:
		m.ResetPayloadHash()
		return nil
	case worldevent.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	}
	return fmt.Errorf("unknown WorldEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorldEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorldEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorldEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorldEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorldEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorldEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorldEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorldEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorldEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorldEvent edge %s", name)
}
