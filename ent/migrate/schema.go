// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeString, Unique: true},
		{Name: "date", Type: field.TypeString},
		{Name: "input_minutes", Type: field.TypeInt, Default: 0},
		{Name: "output_minutes", Type: field.TypeInt, Default: 0},
		{Name: "meets_requirement", Type: field.TypeBool, Default: false},
		{Name: "position", Type: field.TypeInt},
		{Name: "subject_sessions", Type: field.TypeInt},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "study_sessions_subjects_sessions",
				Columns:    []*schema.Column{StudySessionsColumns[7]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_date",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[2]},
			},
			{
				Name:    "studysession_position",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[6]},
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "days_completed", Type: field.TypeInt, Default: 0},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "position", Type: field.TypeInt},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subject_uid",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[1]},
			},
			{
				Name:    "subject_position",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		StudySessionsTable,
		SubjectsTable,
	}
)

func init() {
	StudySessionsTable.ForeignKeys[0].RefTable = SubjectsTable
}
