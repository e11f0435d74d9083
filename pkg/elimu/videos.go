package elimu

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/elimuhub/elimu-go/internal/upload"
	"github.com/elimuhub/elimu-go/internal/validate"
	"github.com/pkg/errors"
)

// videoService implements the VideoService interface
type videoService struct {
	client *Client
}

func (s *videoService) List(ctx context.Context, params *ListParams) (*VideoList, error) {
	raw, err := s.client.fetchList(ctx, ResourceVideos, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	var videos []*Video
	pg, err := decodeList(raw, "videos", &videos)
	if err != nil {
		return nil, err
	}

	return &VideoList{Videos: videos, Pagination: pg}, nil
}

func (s *videoService) Get(ctx context.Context, videoID string) (*Video, error) {
	raw, err := s.client.fetchOne(ctx, ResourceVideos, videoID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get video")
	}

	var video Video
	if err := decodeObject(raw, "video", &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// Create creates a new video. Media above the direct upload limit is sent
// through the chunked uploader first; smaller media rides along in the
// multipart request.
func (s *videoService) Create(ctx context.Context, params *CreateVideoParams) (*Video, error) {
	if params == nil {
		params = &CreateVideoParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	if params.Media != nil && upload.ShouldChunk(params.Media.Size) {
		desc, err := s.client.Uploads.Upload(ctx, params.Media.Content, params.Media.Size, params.Media.Name, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload video media")
		}
		params.FileID = desc.ID
		params.URL = desc.URL
		params.Media = nil
	}

	var raw json.RawMessage
	var err error
	if params.Media != nil || params.Thumbnail != nil {
		form, ferr := formFromParams(params, map[string]*Attachment{
			"media":     params.Media,
			"thumbnail": params.Thumbnail,
		})
		if ferr != nil {
			return nil, ferr
		}
		err = s.client.mutateForm(ctx, http.MethodPost, "/videos", ResourceVideos, form, &raw, "Video created")
	} else {
		err = s.client.mutate(ctx, http.MethodPost, "/videos", ResourceVideos, params, &raw, "Video created")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create video")
	}

	var video Video
	if err := decodeObject(raw, "video", &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *videoService) Update(ctx context.Context, videoID string, params *UpdateVideoParams) (*Video, error) {
	if strings.TrimSpace(videoID) == "" {
		return nil, ErrInvalidID
	}
	if params == nil {
		params = &UpdateVideoParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	if params.Media != nil && upload.ShouldChunk(params.Media.Size) {
		desc, err := s.client.Uploads.Upload(ctx, params.Media.Content, params.Media.Size, params.Media.Name, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload video media")
		}
		params.FileID = desc.ID
		params.URL = desc.URL
		params.Media = nil
	}

	var raw json.RawMessage
	var err error
	if params.Media != nil || params.Thumbnail != nil {
		form, ferr := formFromParams(params, map[string]*Attachment{
			"media":     params.Media,
			"thumbnail": params.Thumbnail,
		})
		if ferr != nil {
			return nil, ferr
		}
		err = s.client.mutateForm(ctx, http.MethodPut, "/videos/"+videoID, ResourceVideos, form, &raw, "Video updated")
	} else {
		err = s.client.mutate(ctx, http.MethodPut, "/videos/"+videoID, ResourceVideos, params, &raw, "Video updated")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update video")
	}

	var video Video
	if err := decodeObject(raw, "video", &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *videoService) Delete(ctx context.Context, videoID string) error {
	if strings.TrimSpace(videoID) == "" {
		return ErrInvalidID
	}
	return errors.Wrap(
		s.client.mutate(ctx, http.MethodDelete, "/videos/"+videoID, ResourceVideos, nil, nil, "Video deleted"),
		"failed to delete video")
}
