package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contentFixture struct {
	materials *fakeMaterialStore
	playlists *fakePlaylistStore
	files     *fakeFileStore
	svc       *ContentService

	trainerID string
}

func newContentFixture() *contentFixture {
	f := &contentFixture{
		materials: newFakeMaterialStore(),
		playlists: newFakePlaylistStore(),
		files:     newFakeFileStore(),
		trainerID: "11111111-1111-1111-1111-111111111111",
	}
	f.svc = NewContentService(f.materials, f.playlists, f.files, 1024, zerolog.Nop())
	return f
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func upload(name, contentType string, size int) (multipart.File, *multipart.FileHeader) {
	header := &multipart.FileHeader{
		Filename: name,
		Size:     int64(size),
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
	return memFile{bytes.NewReader(make([]byte, size))}, header
}

func TestUploadMaterialDetectsFileType(t *testing.T) {
	f := newContentFixture()
	ctx := context.Background()

	file, header := upload("guide.pdf", "application/pdf", 100)
	material, err := f.svc.UploadMaterial(ctx, f.trainerID, "Guide", file, header)
	require.NoError(t, err)

	assert.Equal(t, model.FileTypePDF, material.FileType)
	assert.Equal(t, "guide.pdf", material.FileName)
	assert.True(t, f.files.Exists(material.FilePath))

	file, header = upload("demo.mp4", "video/mp4", 100)
	material, err = f.svc.UploadMaterial(ctx, f.trainerID, "Demo", file, header)
	require.NoError(t, err)
	assert.Equal(t, model.FileTypeVideo, material.FileType)
}

func TestUploadMaterialRejectsUnsupportedType(t *testing.T) {
	f := newContentFixture()

	file, header := upload("photo.png", "image/png", 100)
	_, err := f.svc.UploadMaterial(context.Background(), f.trainerID, "Photo", file, header)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestUploadMaterialRejectsOversizedFile(t *testing.T) {
	f := newContentFixture()

	file, header := upload("big.pdf", "application/pdf", 2048)
	_, err := f.svc.UploadMaterial(context.Background(), f.trainerID, "Big", file, header)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestGetMaterialMasksOtherTrainersContent(t *testing.T) {
	f := newContentFixture()
	ctx := context.Background()

	file, header := upload("guide.pdf", "application/pdf", 100)
	material, err := f.svc.UploadMaterial(ctx, f.trainerID, "Guide", file, header)
	require.NoError(t, err)

	_, err = f.svc.GetMaterial(ctx, "99999999-9999-9999-9999-999999999999", material.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMaterialReplacesFile(t *testing.T) {
	f := newContentFixture()
	ctx := context.Background()

	file, header := upload("v1.pdf", "application/pdf", 100)
	material, err := f.svc.UploadMaterial(ctx, f.trainerID, "Guide", file, header)
	require.NoError(t, err)
	oldPath := material.FilePath

	file, header = upload("v2.mp4", "video/mp4", 100)
	updated, err := f.svc.UpdateMaterial(ctx, f.trainerID, material.ID, "Guide v2", file, header)
	require.NoError(t, err)

	assert.Equal(t, "Guide v2", updated.Title)
	assert.Equal(t, model.FileTypeVideo, updated.FileType)
	assert.False(t, f.files.Exists(oldPath))
	assert.True(t, f.files.Exists(updated.FilePath))
}

func TestUpdateMaterialKeepsFileWhenNoneSent(t *testing.T) {
	f := newContentFixture()
	ctx := context.Background()

	file, header := upload("v1.pdf", "application/pdf", 100)
	material, err := f.svc.UploadMaterial(ctx, f.trainerID, "Guide", file, header)
	require.NoError(t, err)

	updated, err := f.svc.UpdateMaterial(ctx, f.trainerID, material.ID, "Renamed", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, material.FilePath, updated.FilePath)
}

func TestDeleteMaterialRemovesFile(t *testing.T) {
	f := newContentFixture()
	ctx := context.Background()

	file, header := upload("guide.pdf", "application/pdf", 100)
	material, err := f.svc.UploadMaterial(ctx, f.trainerID, "Guide", file, header)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteMaterial(ctx, f.trainerID, material.ID))

	assert.False(t, f.files.Exists(material.FilePath))
	_, err = f.materials.GetByID(ctx, material.ID)
	assert.Error(t, err)
}

func TestPlaylistOwnershipMasked(t *testing.T) {
	f := newContentFixture()
	ctx := context.Background()

	playlist, err := f.svc.CreatePlaylist(ctx, f.trainerID, &model.SavePlaylistRequest{
		Title: "Stitching",
		Skill: "Tailoring",
		Videos: []model.Video{
			{Name: "Intro", URL: "https://videos.example.com/intro"},
		},
	})
	require.NoError(t, err)

	other := "99999999-9999-9999-9999-999999999999"
	_, err = f.svc.GetPlaylist(ctx, other, playlist.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = f.svc.DeletePlaylist(ctx, other, playlist.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePlaylistReplacesVideoList(t *testing.T) {
	f := newContentFixture()
	ctx := context.Background()

	playlist, err := f.svc.CreatePlaylist(ctx, f.trainerID, &model.SavePlaylistRequest{
		Title: "Stitching",
		Skill: "Tailoring",
		Videos: []model.Video{
			{Name: "Intro", URL: "https://videos.example.com/intro"},
			{Name: "Hemming", URL: "https://videos.example.com/hemming"},
		},
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdatePlaylist(ctx, f.trainerID, playlist.ID, &model.SavePlaylistRequest{
		Title: "Stitching",
		Skill: "Tailoring",
		Videos: []model.Video{
			{Name: "Intro", URL: "https://videos.example.com/intro"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, updated.VideoCount())
	_, found := updated.FindVideo("https://videos.example.com/hemming")
	assert.False(t, found)
}
