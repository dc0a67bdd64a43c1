// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mnemonic-nexus/mnx/ent/deadletter"
	"github.com/mnemonic-nexus/mnx/ent/emocurrent"
	"github.com/mnemonic-nexus/mnx/ent/graphnode"
	"github.com/mnemonic-nexus/mnx/ent/note"
	"github.com/mnemonic-nexus/mnx/ent/notelink"
	"github.com/mnemonic-nexus/mnx/ent/outboxentry"
	"github.com/mnemonic-nexus/mnx/ent/schema"
	"github.com/mnemonic-nexus/mnx/ent/watermark"
	"github.com/mnemonic-nexus/mnx/ent/worldevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	deadletterFields := schema.DeadLetter{}.Fields()
	_ = deadletterFields
	// deadletterDescAttempts is the schema descriptor for attempts field.
	deadletterDescAttempts := deadletterFields[8].Descriptor()
	// deadletter.DefaultAttempts holds the default value on creation for the attempts field.
	deadletter.DefaultAttempts = deadletterDescAttempts.Default.(int)
	// deadletterDescMovedAt is the schema descriptor for moved_at field.
	deadletterDescMovedAt := deadletterFields[9].Descriptor()
	// deadletter.DefaultMovedAt holds the default value on creation for the moved_at field.
	deadletter.DefaultMovedAt = deadletterDescMovedAt.Default.(func() time.Time)
	emocurrentFields := schema.EmoCurrent{}.Fields()
	_ = emocurrentFields
	// emocurrentDescMimeType is the schema descriptor for mime_type field.
	emocurrentDescMimeType := emocurrentFields[8].Descriptor()
	// emocurrent.DefaultMimeType holds the default value on creation for the mime_type field.
	emocurrent.DefaultMimeType = emocurrentDescMimeType.Default.(string)
	// emocurrentDescDeleted is the schema descriptor for deleted field.
	emocurrentDescDeleted := emocurrentFields[11].Descriptor()
	// emocurrent.DefaultDeleted holds the default value on creation for the deleted field.
	emocurrent.DefaultDeleted = emocurrentDescDeleted.Default.(bool)
	graphnodeFields := schema.GraphNode{}.Fields()
	_ = graphnodeFields
	// graphnodeDescDeleted is the schema descriptor for deleted field.
	graphnodeDescDeleted := graphnodeFields[5].Descriptor()
	// graphnode.DefaultDeleted holds the default value on creation for the deleted field.
	graphnode.DefaultDeleted = graphnodeDescDeleted.Default.(bool)
	noteFields := schema.Note{}.Fields()
	_ = noteFields
	// noteDescBody is the schema descriptor for body field.
	noteDescBody := noteFields[4].Descriptor()
	// note.DefaultBody holds the default value on creation for the body field.
	note.DefaultBody = noteDescBody.Default.(string)
	notelinkFields := schema.NoteLink{}.Fields()
	_ = notelinkFields
	// notelinkDescLinkType is the schema descriptor for link_type field.
	notelinkDescLinkType := notelinkFields[4].Descriptor()
	// notelink.DefaultLinkType holds the default value on creation for the link_type field.
	notelink.DefaultLinkType = notelinkDescLinkType.Default.(string)
	outboxentryFields := schema.OutboxEntry{}.Fields()
	_ = outboxentryFields
	// outboxentryDescBranch is the schema descriptor for branch field.
	outboxentryDescBranch := outboxentryFields[3].Descriptor()
	// outboxentry.BranchValidator is a validator for the "branch" field. It is called by the builders before save.
	outboxentry.BranchValidator = outboxentryDescBranch.Validators[0].(func(string) error)
	// outboxentryDescAttempts is the schema descriptor for attempts field.
	outboxentryDescAttempts := outboxentryFields[9].Descriptor()
	// outboxentry.DefaultAttempts holds the default value on creation for the attempts field.
	outboxentry.DefaultAttempts = outboxentryDescAttempts.Default.(int)
	watermarkFields := schema.Watermark{}.Fields()
	_ = watermarkFields
	// watermarkDescLastProcessedSeq is the schema descriptor for last_processed_seq field.
	watermarkDescLastProcessedSeq := watermarkFields[3].Descriptor()
	// watermark.DefaultLastProcessedSeq holds the default value on creation for the last_processed_seq field.
	watermark.DefaultLastProcessedSeq = watermarkDescLastProcessedSeq.Default.(int64)
	// watermarkDescUpdatedAt is the schema descriptor for updated_at field.
	watermarkDescUpdatedAt := watermarkFields[4].Descriptor()
	// watermark.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	watermark.DefaultUpdatedAt = watermarkDescUpdatedAt.Default.(func() time.Time)
	// watermark.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	watermark.UpdateDefaultUpdatedAt = watermarkDescUpdatedAt.UpdateDefault.(func() time.Time)
	worldeventFields := schema.WorldEvent{}.Fields()
	_ = worldeventFields
	// worldeventDescBranch is the schema descriptor for branch field.
	worldeventDescBranch := worldeventFields[3].Descriptor()
	// worldevent.BranchValidator is a validator for the "branch" field. It is called by the builders before save.
	worldevent.BranchValidator = worldeventDescBranch.Validators[0].(func(string) error)
	// worldeventDescReceivedAt is the schema descriptor for received_at field.
	worldeventDescReceivedAt := worldeventFields[7].Descriptor()
	// worldevent.DefaultReceivedAt holds the default value on creation for the received_at field.
	worldevent.DefaultReceivedAt = worldeventDescReceivedAt.Default.(func() time.Time)
}
