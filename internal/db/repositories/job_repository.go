package repositories

import (
	"context"

	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type JobRepository struct {
	db *sqlx.DB
}

func NewJobRepository(db *sqlx.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) InsertJob(ctx context.Context, job *entities.Job) error {
	return r.db.QueryRowxContext(ctx, constants.InsertJob,
		job.JobNumber,
		job.ProjectName,
		job.ClientName,
		job.LocationName,
		job.LSD,
		job.AFENumber,
		job.PONumber,
		job.AssignedPM,
		job.Status,
	).StructScan(job)
}

func (r *JobRepository) FindByNumber(ctx context.Context, jobNumber string) (*entities.Job, error) {
	var job entities.Job
	if err := r.db.QueryRowxContext(ctx, constants.GetJobByNumber, jobNumber).StructScan(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) ListAll(ctx context.Context) ([]entities.Job, error) {
	var jobs []entities.Job
	if err := r.db.SelectContext(ctx, &jobs, constants.ListJobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) ListActive(ctx context.Context) ([]entities.Job, error) {
	var jobs []entities.Job
	if err := r.db.SelectContext(ctx, &jobs, constants.ListActiveJobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
