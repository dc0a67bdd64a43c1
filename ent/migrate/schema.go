// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DeadLettersColumns holds the columns for the "dead_letters" table.
	DeadLettersColumns = []*schema.Column{
		{Name: "global_seq", Type: field.TypeInt64, Increment: true},
		{Name: "event_id", Type: field.TypeUUID},
		{Name: "world_id", Type: field.TypeUUID},
		{Name: "branch", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "envelope", Type: field.TypeJSON},
		{Name: "error", Type: field.TypeString, Size: 2147483647},
		{Name: "publisher_id", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "moved_at", Type: field.TypeTime},
	}
	// DeadLettersTable holds the schema information for the "dead_letters" table.
	DeadLettersTable = &schema.Table{
		Name:       "dead_letters",
		Columns:    DeadLettersColumns,
		PrimaryKey: []*schema.Column{DeadLettersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deadletter_world_id_branch",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[2], DeadLettersColumns[3]},
			},
			{
				Name:    "deadletter_moved_at",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[9]},
			},
		},
	}
	// EmoCurrentColumns holds the columns for the "emo_current" table.
	EmoCurrentColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "emo_id", Type: field.TypeUUID},
		{Name: "world_id", Type: field.TypeUUID},
		{Name: "branch", Type: field.TypeString},
		{Name: "emo_type", Type: field.TypeEnum, Enums: []string{"note", "fact", "doc", "profile"}},
		{Name: "emo_version", Type: field.TypeInt},
		{Name: "tenant_id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "mime_type", Type: field.TypeString, Default: "text/markdown"},
		{Name: "source_kind", Type: field.TypeEnum, Enums: []string{"user", "agent", "ingest"}, Default: "agent"},
		{Name: "source_uri", Type: field.TypeString, Nullable: true},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "deletion_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EmoCurrentTable holds the schema information for the "emo_current" table.
	EmoCurrentTable = &schema.Table{
		Name:       "emo_current",
		Columns:    EmoCurrentColumns,
		PrimaryKey: []*schema.Column{EmoCurrentColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emocurrent_emo_id_world_id_branch",
				Unique:  true,
				Columns: []*schema.Column{EmoCurrentColumns[1], EmoCurrentColumns[2], EmoCurrentColumns[3]},
			},
			{
				Name:    "emocurrent_world_id_branch_deleted",
				Unique:  false,
				Columns: []*schema.Column{EmoCurrentColumns[2], EmoCurrentColumns[3], EmoCurrentColumns[12]},
			},
		},
	}
	// EmoHistoryColumns holds the columns for the "emo_history" table.
	EmoHistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "change_id", Type: field.TypeUUID, Nullable: true},
		{Name: "emo_id", Type: field.TypeUUID},
		{Name: "emo_version", Type: field.TypeInt},
		{Name: "world_id", Type: field.TypeUUID},
		{Name: "branch", Type: field.TypeString},
		{Name: "operation", Type: field.TypeEnum, Enums: []string{"created", "updated", "linked", "deleted"}},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "recorded_at", Type: field.TypeTime},
	}
	// EmoHistoryTable holds the schema information for the "emo_history" table.
	EmoHistoryTable = &schema.Table{
		Name:       "emo_history",
		Columns:    EmoHistoryColumns,
		PrimaryKey: []*schema.Column{EmoHistoryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emohistory_emo_id_emo_version_world_id_branch",
				Unique:  true,
				Columns: []*schema.Column{EmoHistoryColumns[2], EmoHistoryColumns[3], EmoHistoryColumns[4], EmoHistoryColumns[5]},
			},
			{
				Name:    "emohistory_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{EmoHistoryColumns[8]},
			},
			{
				Name:    "emohistory_world_id_branch",
				Unique:  false,
				Columns: []*schema.Column{EmoHistoryColumns[4], EmoHistoryColumns[5]},
			},
		},
	}
	// EmoLinksColumns holds the columns for the "emo_links" table.
	EmoLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "emo_id", Type: field.TypeUUID},
		{Name: "world_id", Type: field.TypeUUID},
		{Name: "branch", Type: field.TypeString},
		{Name: "rel", Type: field.TypeEnum, Enums: []string{"derived", "supersedes", "merges", "linked"}},
		{Name: "target_emo_id", Type: field.TypeUUID, Nullable: true},
		{Name: "target_uri", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EmoLinksTable holds the schema information for the "emo_links" table.
	EmoLinksTable = &schema.Table{
		Name:       "emo_links",
		Columns:    EmoLinksColumns,
		PrimaryKey: []*schema.Column{EmoLinksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emolink_emo_id_world_id_branch",
				Unique:  false,
				Columns: []*schema.Column{EmoLinksColumns[1], EmoLinksColumns[2], EmoLinksColumns[3]},
			},
			{
				Name:    "emolink_world_id_branch_target_emo_id",
				Unique:  false,
				Columns: []*schema.Column{EmoLinksColumns[2], EmoLinksColumns[3], EmoLinksColumns[5]},
			},
		},
	}
	// GraphEdgesColumns holds the columns for the "graph_edges" table.
	GraphEdgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "src_id", Type: field.TypeUUID},
		{Name: "world_id", Type: field.TypeUUID},
		{Name: "branch", Type: field.TypeString},
		{Name: "rel", Type: field.TypeString},
		{Name: "dst_id", Type: field.TypeUUID, Nullable: true},
		{Name: "dst_uri", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GraphEdgesTable holds the schema information for the "graph_edges" table.
	GraphEdgesTable = &schema.Table{
		Name:       "graph_edges",
		Columns:    GraphEdgesColumns,
		PrimaryKey: []*schema.Column{GraphEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graphedge_src_id_world_id_branch",
				Unique:  false,
				Columns: []*schema.Column{GraphEdgesColumns[1], GraphEdgesColumns[2], GraphEdgesColumns[3]},
			},
			{
				Name:    "graphedge_world_id_branch_dst_id",
				Unique:  false,
				Columns: []*schema.Column{GraphEdgesColumns[2], GraphEdgesColumns[3], GraphEdgesColumns[5]},
			},
		},
	}
	// GraphNodesColumns holds the columns for the "graph_nodes" table.
	GraphNodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "node_id", Type: field.TypeUUID},
		{Name: "world_id", Type: field.TypeUUID},
		{Name: "branch", Type: field.TypeString},
		{Name: "emo_type", Type: field.TypeString},
		{Name: "emo_version", Type: field.TypeInt},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GraphNodesTable holds the schema information for the "graph_nodes" table.
	GraphNodesTable = &schema.Table{
		Name:       "graph_nodes",
		Columns:    GraphNodesColumns,
		PrimaryKey: []*schema.Column{GraphNodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graphnode_node_id_world_id_branch",
				Unique:  true,
				Columns: []*schema.Column{GraphNodesColumns[1], GraphNodesColumns[2], GraphNodesColumns[3]},
			},
		},
	}
	// NotesColumns holds the columns for the "notes" table.
	NotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "world_id", Type: field.TypeUUID},
		{Name: "branch", Type: field.TypeString},
		{Name: "note_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// NotesTable holds the schema information for the "notes" table.
	NotesTable = &schema.Table{
		Name:       "notes",
		Columns:    NotesColumns,
		PrimaryKey: []*schema.Column{NotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "note_world_id_branch_note_id",
				Unique:  true,
				Columns: []*schema.Column{NotesColumns[1], NotesColumns[2], NotesColumns[3]},
			},
		},
	}
	// NoteLinksColumns holds the columns for the "note_links" table.
	NoteLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "world_id", Type: field.TypeUUID},
		{Name: "branch", Type: field.TypeString},
		{Name: "src_id", Type: field.TypeString},
		{Name: "dst_id", Type: field.TypeString},
		{Name: "link_type", Type: field.TypeString, Default: "default"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NoteLinksTable holds the schema information for the "note_links" table.
	NoteLinksTable = &schema.Table{
		Name:       "note_links",
		Columns:    NoteLinksColumns,
		PrimaryKey: []*schema.Column{NoteLinksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notelink_world_id_branch_src_id_dst_id_link_type",
				Unique:  true,
				Columns: []*schema.Column{NoteLinksColumns[1], NoteLinksColumns[2], NoteLinksColumns[3], NoteLinksColumns[4], NoteLinksColumns[5]},
			},
		},
	}
	// NoteTagsColumns holds the columns for the "note_tags" table.
	NoteTagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "world_id", Type: field.TypeUUID},
		{Name: "branch", Type: field.TypeString},
		{Name: "note_id", Type: field.TypeString},
		{Name: "tag", Type: field.TypeString},
		{Name: "applied_at", Type: field.TypeTime},
	}
	// NoteTagsTable holds the schema information for the "note_tags" table.
	NoteTagsTable = &schema.Table{
		Name:       "note_tags",
		Columns:    NoteTagsColumns,
		PrimaryKey: []*schema.Column{NoteTagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notetag_world_id_branch_note_id_tag",
				Unique:  true,
				Columns: []*schema.Column{NoteTagsColumns[1], NoteTagsColumns[2], NoteTagsColumns[3], NoteTagsColumns[4]},
			},
		},
	}
	// OutboxColumns holds the columns for the "outbox" table.
	OutboxColumns = []*schema.Column{
		{Name: "global_seq", Type: field.TypeInt64, Increment: true},
		{Name: "event_id", Type: field.TypeUUID},
		{Name: "world_id", Type: field.TypeUUID},
		{Name: "branch", Type: field.TypeString, Size: 100},
		{Name: "kind", Type: field.TypeString},
		{Name: "envelope", Type: field.TypeJSON},
		{Name: "payload_hash", Type: field.TypeString},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
	}
	// OutboxTable holds the schema information for the "outbox" table.
	OutboxTable = &schema.Table{
		Name:       "outbox",
		Columns:    OutboxColumns,
		PrimaryKey: []*schema.Column{OutboxColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outboxentry_published_at",
				Unique:  false,
				Columns: []*schema.Column{OutboxColumns[8]},
			},
			{
				Name:    "outboxentry_world_id_branch",
				Unique:  false,
				Columns: []*schema.Column{OutboxColumns[2], OutboxColumns[3]},
			},
		},
	}
	// WatermarksColumns holds the columns for the "watermarks" table.
	WatermarksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "projector_name", Type: field.TypeString},
		{Name: "world_id", Type: field.TypeUUID},
		{Name: "branch", Type: field.TypeString},
		{Name: "last_processed_seq", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WatermarksTable holds the schema information for the "watermarks" table.
	WatermarksTable = &schema.Table{
		Name:       "watermarks",
		Columns:    WatermarksColumns,
		PrimaryKey: []*schema.Column{WatermarksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "watermark_projector_name_world_id_branch",
				Unique:  true,
				Columns: []*schema.Column{WatermarksColumns[1], WatermarksColumns[2], WatermarksColumns[3]},
			},
			{
				Name:    "watermark_projector_name",
				Unique:  false,
				Columns: []*schema.Column{WatermarksColumns[1]},
			},
		},
	}
	// EventLogColumns holds the columns for the "event_log" table.
	EventLogColumns = []*schema.Column{
		{Name: "global_seq", Type: field.TypeInt64, Increment: true},
		{Name: "event_id", Type: field.TypeUUID, Unique: true},
		{Name: "world_id", Type: field.TypeUUID},
		{Name: "branch", Type: field.TypeString, Size: 100},
		{Name: "kind", Type: field.TypeString},
		{Name: "envelope", Type: field.TypeJSON},
		{Name: "occurred_at", Type: field.TypeTime, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "payload_hash", Type: field.TypeString},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
	}
	// EventLogTable holds the schema information for the "event_log" table.
	EventLogTable = &schema.Table{
		Name:       "event_log",
		Columns:    EventLogColumns,
		PrimaryKey: []*schema.Column{EventLogColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "worldevent_world_id_branch_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{EventLogColumns[2], EventLogColumns[3], EventLogColumns[9]},
			},
			{
				Name:    "worldevent_world_id_branch",
				Unique:  false,
				Columns: []*schema.Column{EventLogColumns[2], EventLogColumns[3]},
			},
			{
				Name:    "worldevent_world_id_branch_kind",
				Unique:  false,
				Columns: []*schema.Column{EventLogColumns[2], EventLogColumns[3], EventLogColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DeadLettersTable,
		EmoCurrentTable,
		EmoHistoryTable,
		EmoLinksTable,
		GraphEdgesTable,
		GraphNodesTable,
		NotesTable,
		NoteLinksTable,
		NoteTagsTable,
		OutboxTable,
		WatermarksTable,
		EventLogTable,
	}
)

func init() {
	EmoCurrentTable.Annotation = &entsql.Annotation{
		Table: "emo_current",
	}
	EmoHistoryTable.Annotation = &entsql.Annotation{
		Table: "emo_history",
	}
	OutboxTable.Annotation = &entsql.Annotation{
		Table: "outbox",
	}
	EventLogTable.Annotation = &entsql.Annotation{
		Table: "event_log",
	}
}
