package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PipelineRun struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Status       string         `gorm:"column:status;not null;index" json:"status"` // running|succeeded|failed
	Stage        string         `gorm:"column:stage;not null" json:"stage"`         // generate|render|filter|analyze|balance|augment|write|done
	Generated    int            `gorm:"column:generated;not null;default:0" json:"generated"`
	Unrenderable int            `gorm:"column:unrenderable;not null;default:0" json:"unrenderable"`
	Filtered     int            `gorm:"column:filtered;not null;default:0" json:"filtered"`
	Duplicates   int            `gorm:"column:duplicates;not null;default:0" json:"duplicates"`
	BalancedAway int            `gorm:"column:balanced_away;not null;default:0" json:"balanced_away"`
	Augmented    int            `gorm:"column:augmented;not null;default:0" json:"augmented"`
	FinalCount   int            `gorm:"column:final_count;not null;default:0" json:"final_count"`
	OutputPath   string         `gorm:"column:output_path" json:"output_path"`
	RemovedPath  string         `gorm:"column:removed_path" json:"removed_path"`
	ReportJSON   string         `gorm:"column:report_json" json:"report_json"` // diversity report snapshot
	Error        string         `gorm:"column:error" json:"error"`
	StartedAt    time.Time      `gorm:"column:started_at;not null;index" json:"started_at"`
	FinishedAt   *time.Time     `gorm:"column:finished_at" json:"finished_at,omitempty"`
	CreatedAt    time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;index" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PipelineRun) TableName() string { return "pipeline_run" }
