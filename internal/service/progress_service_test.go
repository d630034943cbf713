package service

import (
	"context"
	"testing"

	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type progressFixture struct {
	trainees  *fakeTraineeStore
	materials *fakeMaterialStore
	playlists *fakePlaylistStore
	progress  *fakeProgressStore
	svc       *ProgressService

	trainerID string
	trainee   *model.Trainee
}

func newProgressFixture(t *testing.T) *progressFixture {
	t.Helper()
	f := &progressFixture{
		trainees:  newFakeTraineeStore(),
		materials: newFakeMaterialStore(),
		playlists: newFakePlaylistStore(),
		progress:  newFakeProgressStore(),
	}
	f.svc = NewProgressService(f.trainees, f.materials, f.playlists, f.progress)

	f.trainerID = "11111111-1111-1111-1111-111111111111"
	f.trainee = &model.Trainee{
		Username:          "asha",
		Name:              "Asha",
		Skill:             "Tailoring",
		Status:            model.StatusApproved,
		AssignedTrainerID: f.trainerID,
	}
	require.NoError(t, f.trainees.Create(context.Background(), f.trainee))
	return f
}

func (f *progressFixture) addMaterial(t *testing.T, title string) *model.TrainingMaterial {
	t.Helper()
	m := &model.TrainingMaterial{
		TrainerID: f.trainerID,
		Title:     title,
		FileName:  title + ".pdf",
		FilePath:  "123_" + title + ".pdf",
		FileType:  model.FileTypePDF,
	}
	require.NoError(t, f.materials.Create(context.Background(), m))
	return m
}

func (f *progressFixture) addPlaylist(t *testing.T, title string, videos ...model.Video) *model.Playlist {
	t.Helper()
	p := &model.Playlist{
		TrainerID: f.trainerID,
		Title:     title,
		Skill:     "Tailoring",
		Videos:    videos,
	}
	require.NoError(t, f.playlists.Create(context.Background(), p))
	return p
}

func TestMarkMaterialIsIdempotent(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	m := f.addMaterial(t, "Basics")

	first, err := f.svc.MarkMaterial(ctx, f.trainee.ID, m.ID)
	require.NoError(t, err)

	second, err := f.svc.MarkMaterial(ctx, f.trainee.ID, m.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CompletedAt, second.CompletedAt)

	ledger, err := f.progress.ListByTrainee(ctx, f.trainee.ID)
	require.NoError(t, err)
	assert.Len(t, ledger, 1)
}

func TestMarkVideoIsIdempotent(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	p := f.addPlaylist(t, "Stitching",
		model.Video{Name: "Intro", URL: "https://videos.example.com/intro"},
	)

	first, err := f.svc.MarkVideo(ctx, f.trainee.ID, p.ID, "https://videos.example.com/intro")
	require.NoError(t, err)

	second, err := f.svc.MarkVideo(ctx, f.trainee.ID, p.ID, "https://videos.example.com/intro")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestMarkMaterialRejectsOtherTrainersContent(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()

	other := &model.TrainingMaterial{
		TrainerID: "99999999-9999-9999-9999-999999999999",
		Title:     "Foreign",
		FileType:  model.FileTypePDF,
	}
	require.NoError(t, f.materials.Create(ctx, other))

	_, err := f.svc.MarkMaterial(ctx, f.trainee.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkVideoRequiresExactURLMatch(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	p := f.addPlaylist(t, "Stitching",
		model.Video{Name: "Intro", URL: "https://videos.example.com/intro"},
	)

	_, err := f.svc.MarkVideo(ctx, f.trainee.ID, p.ID, "https://videos.example.com/INTRO")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSummaryComputesPercentageFromCatalog(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()

	m1 := f.addMaterial(t, "Basics")
	f.addMaterial(t, "Advanced")
	p := f.addPlaylist(t, "Stitching",
		model.Video{Name: "Intro", URL: "https://videos.example.com/intro"},
		model.Video{Name: "Hemming", URL: "https://videos.example.com/hemming"},
	)

	_, err := f.svc.MarkMaterial(ctx, f.trainee.ID, m1.ID)
	require.NoError(t, err)
	_, err = f.svc.MarkVideo(ctx, f.trainee.ID, p.ID, "https://videos.example.com/intro")
	require.NoError(t, err)

	summary, err := f.svc.Summary(ctx, f.trainee.ID)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalItems)
	assert.Equal(t, 2, summary.CompletedItems)
	assert.InDelta(t, 50.0, summary.CompletionPercentage, 0.001)
}

func TestSummaryDropsLedgerEntriesForDeletedContent(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()

	m1 := f.addMaterial(t, "Basics")
	m2 := f.addMaterial(t, "Advanced")

	_, err := f.svc.MarkMaterial(ctx, f.trainee.ID, m1.ID)
	require.NoError(t, err)
	_, err = f.svc.MarkMaterial(ctx, f.trainee.ID, m2.ID)
	require.NoError(t, err)

	// Trainer removes one material after the trainee finished it. The
	// ledger row survives but stops resolving.
	require.NoError(t, f.materials.Delete(ctx, m2.ID))

	summary, err := f.svc.Summary(ctx, f.trainee.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalItems)
	assert.Equal(t, 1, summary.CompletedItems)
	assert.InDelta(t, 100.0, summary.CompletionPercentage, 0.001)
}

func TestSummaryForUnassignedTraineeIsZero(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()

	unassigned := &model.Trainee{Username: "ravi", Status: model.StatusApproved}
	require.NoError(t, f.trainees.Create(ctx, unassigned))

	summary, err := f.svc.Summary(ctx, unassigned.ID)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalItems)
	assert.Zero(t, summary.CompletedItems)
	assert.Zero(t, summary.CompletionPercentage)
	assert.Empty(t, summary.ProgressItems)
}

func TestSummaryEmptyCatalogIsZeroNotNaN(t *testing.T) {
	f := newProgressFixture(t)

	summary, err := f.svc.Summary(context.Background(), f.trainee.ID)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalItems)
	assert.Equal(t, 0.0, summary.CompletionPercentage)
}

func TestAllSummariesSkipsPendingAndUnassigned(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()

	pending := &model.Trainee{Username: "pending", Status: model.StatusPending, AssignedTrainerID: f.trainerID}
	require.NoError(t, f.trainees.Create(ctx, pending))
	unassigned := &model.Trainee{Username: "floating", Status: model.StatusApproved}
	require.NoError(t, f.trainees.Create(ctx, unassigned))

	summaries, err := f.svc.AllSummaries(ctx, func(string) bool { return false })
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	assert.Equal(t, f.trainee.ID, summaries[0].TraineeID)
}

func TestListForTraineeUnknownTrainee(t *testing.T) {
	f := newProgressFixture(t)

	_, err := f.svc.ListForTrainee(context.Background(), "22222222-2222-2222-2222-222222222222")
	assert.ErrorIs(t, err, ErrNotFound)
}
