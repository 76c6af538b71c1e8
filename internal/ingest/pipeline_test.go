package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/rushhirosan/soccer-practice-search/internal/youtube"
)

// stubFetcher serves pre-baked pages keyed by page token and records calls.
type stubFetcher struct {
	pages      map[string]*youtube.Page
	details    map[string]youtube.VideoDetail
	pageErr    map[string]error
	detailsErr error
	pageCalls  int
}

func (s *stubFetcher) SearchPage(_ context.Context, _ string, pageToken string) (*youtube.Page, error) {
	s.pageCalls++
	if err := s.pageErr[pageToken]; err != nil {
		return nil, err
	}
	if page, ok := s.pages[pageToken]; ok {
		return page, nil
	}
	return &youtube.Page{}, nil
}

func (s *stubFetcher) VideoDetails(_ context.Context, videoIDs []string) ([]youtube.VideoDetail, error) {
	if s.detailsErr != nil {
		return nil, s.detailsErr
	}
	var out []youtube.VideoDetail
	for _, id := range videoIDs {
		if d, ok := s.details[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *stubFetcher) ChannelTitle(context.Context, string) (string, error) {
	return "stub channel", nil
}

func newTestPipeline(f Fetcher) *Pipeline {
	return NewPipeline(f, nil, nil, nil, 0)
}

func TestCollectChannel_PaginatesAndJoins(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[string]*youtube.Page{
			"": {
				Items: []youtube.VideoItem{
					{VideoID: "v1", Title: "1対1 練習", PublishedAt: "2023-11-22T11:00:00Z"},
				},
				NextPageToken: "p2",
			},
			"p2": {
				Items: []youtube.VideoItem{
					{VideoID: "v2", Title: "パス基礎", PublishedAt: "2023-11-23T09:00:00Z"},
				},
			},
		},
		details: map[string]youtube.VideoDetail{
			"v1": {VideoID: "v1", ViewCount: "100", LikeCount: "10", Duration: "PT1H2M3S"},
			"v2": {VideoID: "v2", ViewCount: "50", LikeCount: "5", Duration: "PT15M"},
		},
	}

	videos := newTestPipeline(fetcher).CollectChannel(context.Background(), "UCx")

	if len(videos) != 2 {
		t.Fatalf("collected %d videos, want 2", len(videos))
	}
	if fetcher.pageCalls != 2 {
		t.Errorf("page calls = %d, want 2", fetcher.pageCalls)
	}

	v1 := videos[0]
	if v1.ID != "v1" || v1.ViewCount != "100" || v1.LikeCount != "10" {
		t.Errorf("v1 join wrong: %+v", v1)
	}
	if v1.Duration != "1:02:03" {
		t.Errorf("v1 duration = %q, want 1:02:03", v1.Duration)
	}
	if v1.URL != "https://www.youtube.com/watch?v=v1" {
		t.Errorf("v1 url = %q", v1.URL)
	}
	if v1.UploadDate != "2023-11-22T11:00:00Z" {
		t.Errorf("v1 upload date = %q", v1.UploadDate)
	}
	if videos[1].Duration != "0:15:00" {
		t.Errorf("v2 duration = %q, want 0:15:00", videos[1].Duration)
	}
}

func TestCollectChannel_MissingDetailGetsSentinels(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[string]*youtube.Page{
			"": {Items: []youtube.VideoItem{{VideoID: "v1", Title: "無題"}}},
		},
	}

	videos := newTestPipeline(fetcher).CollectChannel(context.Background(), "UCx")

	if len(videos) != 1 {
		t.Fatalf("collected %d videos, want 1", len(videos))
	}
	v := videos[0]
	if v.ViewCount != "N/A" || v.LikeCount != "N/A" || v.Duration != "N/A" {
		t.Errorf("missing detail not defaulted to sentinels: %+v", v)
	}
}

func TestCollectChannel_PageErrorStopsEarlyKeepsPartial(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[string]*youtube.Page{
			"": {
				Items:         []youtube.VideoItem{{VideoID: "v1", Title: "x"}},
				NextPageToken: "p2",
			},
		},
		pageErr: map[string]error{"p2": errors.New("HTTP 503")},
	}

	videos := newTestPipeline(fetcher).CollectChannel(context.Background(), "UCx")

	if len(videos) != 1 {
		t.Fatalf("collected %d videos, want the partial page", len(videos))
	}
	if fetcher.pageCalls != 2 {
		t.Errorf("page calls = %d, want 2 (stopped after failure)", fetcher.pageCalls)
	}
}

func TestCollectChannel_FirstPageErrorReturnsNothing(t *testing.T) {
	fetcher := &stubFetcher{
		pageErr: map[string]error{"": errors.New("network down")},
	}

	videos := newTestPipeline(fetcher).CollectChannel(context.Background(), "UCx")
	if len(videos) != 0 {
		t.Errorf("collected %d videos, want 0", len(videos))
	}
}

func TestCollectChannel_DetailsErrorKeepsListing(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[string]*youtube.Page{
			"": {Items: []youtube.VideoItem{{VideoID: "v1", Title: "x"}}},
		},
		detailsErr: errors.New("quota exceeded"),
	}

	videos := newTestPipeline(fetcher).CollectChannel(context.Background(), "UCx")
	if len(videos) != 1 {
		t.Fatalf("collected %d videos, want 1", len(videos))
	}
	if videos[0].ViewCount != "N/A" {
		t.Errorf("view count = %q, want sentinel", videos[0].ViewCount)
	}
}

func TestClassify(t *testing.T) {
	videos := newTestPipeline(&stubFetcher{
		pages: map[string]*youtube.Page{
			"": {Items: []youtube.VideoItem{
				{VideoID: "v1", Title: "U12 1対1 ディフェンス練習"},
				{VideoID: "v2", Title: "高校生向けパス基礎"},
			}},
		},
	}).CollectChannel(context.Background(), "UCx")

	classifications := Classify(videos, 7)

	if len(classifications) != 2 {
		t.Fatalf("got %d classifications", len(classifications))
	}

	c1 := classifications[0]
	if c1.CategoryTitle != "対人" || c1.Players != "1対1" || c1.Level != "小学生以上" {
		t.Errorf("v1 classified as %+v", c1)
	}
	c2 := classifications[1]
	if c2.CategoryTitle != "パス" || c2.Players != "人数指定なし" || c2.Level != "高校生" {
		t.Errorf("v2 classified as %+v", c2)
	}
	for _, c := range classifications {
		if c.ChannelBrandCategory != 7 {
			t.Errorf("%s channel key = %d, want 7", c.ID, c.ChannelBrandCategory)
		}
	}
}
