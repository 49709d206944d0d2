package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/mock"
	"github.com/MKhiriev/go-flatnav/internal/validators"
	"github.com/MKhiriev/go-flatnav/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSnapshotSvc wires a snapshotService to a real dashboardService whose
// repository accepts every save.
func newTestSnapshotSvc(t *testing.T, initial models.Dashboard) (*snapshotService, *dashboardService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockDashboardRepository(ctrl)
	repo.EXPECT().SaveDashboard(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	validator := validators.NewDashboardValidator()
	dashboard := NewDashboardService(repo, &seqIDs{}, validator, logger.Nop()).(*dashboardService)
	dashboard.state = initial

	svc := NewSnapshotService(dashboard, validator, logger.Nop()).(*snapshotService)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 123_000_000, time.FixedZone("CET", 3600)) }

	return svc, dashboard
}

func parseRaw(t *testing.T, s string) models.RawSnapshot {
	t.Helper()
	var raw models.RawSnapshot
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	return raw
}

// ── Assemble ─────────────────────────────────────────────────────────────────

func TestSnapshotService_Assemble(t *testing.T) {
	d := models.DefaultDashboard()
	svc, _ := newTestSnapshotSvc(t, d)

	snapshot := svc.Assemble()

	assert.Equal(t, 1, snapshot.Version)
	assert.Equal(t, "2026-03-14T08:26:53.123Z", snapshot.Timestamp)
	assert.Equal(t, d.Bookmarks, snapshot.Bookmarks)
	assert.Equal(t, d.Categories, snapshot.Categories)
	assert.Equal(t, d.Config, snapshot.Config)
}

func TestSnapshotService_Assemble_EmptyCollectionsAreArrays(t *testing.T) {
	svc, _ := newTestSnapshotSvc(t, models.Dashboard{})

	data, err := json.Marshal(svc.Assemble())
	require.NoError(t, err)

	assert.Contains(t, string(data), `"bookmarks":[]`)
	assert.Contains(t, string(data), `"categories":[]`)
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestSnapshotService_RoundTrip(t *testing.T) {
	source, _ := newTestSnapshotSvc(t, models.DefaultDashboard())

	var buf bytes.Buffer
	require.NoError(t, source.Export(&buf))

	target, dashboard := newTestSnapshotSvc(t, models.Dashboard{})
	require.NoError(t, target.Import(context.Background(), &buf))

	want := models.DefaultDashboard()
	got := dashboard.Dashboard()
	assert.Equal(t, want.Bookmarks, got.Bookmarks)
	assert.Equal(t, want.Categories, got.Categories)
	assert.Equal(t, want.Config, got.Config)
	assert.Equal(t, "1", got.ActiveCategoryID)
}

func TestSnapshotService_Restore_IsIdempotent(t *testing.T) {
	svc, dashboard := newTestSnapshotSvc(t, models.Dashboard{})
	raw := parseRaw(t, `{"bookmarks":[{"id":"b1","title":"Go","url":"https://go.dev","categoryId":"c1"}],
		"categories":[{"id":"c1","name":"Dev","color":"bg-blue-500"}],
		"config":{"appName":"Nav","appSubtitle":"","appFontSize":"text-2xl","theme":"dark"}}`)

	require.NoError(t, svc.Restore(context.Background(), raw))
	first := dashboard.Dashboard()

	require.NoError(t, svc.Restore(context.Background(), raw))
	second := dashboard.Dashboard()

	first.Version, second.Version = 0, 0
	assert.Equal(t, first, second)
}

func TestSnapshotService_Restore_PartialTolerance(t *testing.T) {
	initial := models.DefaultDashboard()
	svc, dashboard := newTestSnapshotSvc(t, initial)

	raw := parseRaw(t, `{"bookmarks":"not-an-array","config":{"theme":"dark","appName":42}}`)

	require.NoError(t, svc.Restore(context.Background(), raw))

	got := dashboard.Dashboard()
	assert.Equal(t, initial.Bookmarks, got.Bookmarks)
	assert.Equal(t, initial.Categories, got.Categories)
	assert.Equal(t, "dark", got.Config.Theme)
	assert.Equal(t, initial.Config.AppName, got.Config.AppName)
	assert.Equal(t, initial.Config.AppSubtitle, got.Config.AppSubtitle)
}

func TestSnapshotService_Restore_EmptyStringConfigIsApplied(t *testing.T) {
	svc, dashboard := newTestSnapshotSvc(t, models.DefaultDashboard())

	raw := parseRaw(t, `{"config":{"appSubtitle":""}}`)
	require.NoError(t, svc.Restore(context.Background(), raw))

	assert.Empty(t, dashboard.Dashboard().Config.AppSubtitle)
}

func TestSnapshotService_Restore_RepairsActiveCategory(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantActive string
	}{
		{
			name:       "moves to first category",
			raw:        `{"categories":[{"id":"x","name":"X"},{"id":"y","name":"Y"}]}`,
			wantActive: "x",
		},
		{
			name:       "clears when no categories",
			raw:        `{"categories":[]}`,
			wantActive: "",
		},
		{
			name:       "keeps surviving selection",
			raw:        `{"categories":[{"id":"z","name":"Z"},{"id":"2","name":"Dev"}]}`,
			wantActive: "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := models.DefaultDashboard()
			initial.ActiveCategoryID = "2"
			svc, dashboard := newTestSnapshotSvc(t, initial)

			require.NoError(t, svc.Restore(context.Background(), parseRaw(t, tt.raw)))
			assert.Equal(t, tt.wantActive, dashboard.Dashboard().ActiveCategoryID)
		})
	}
}

func TestSnapshotService_Restore_RepairsDanglingSelection(t *testing.T) {
	initial := models.Dashboard{
		Categories:       []models.Category{{ID: "a", Name: "A"}},
		ActiveCategoryID: "gone",
	}
	svc, dashboard := newTestSnapshotSvc(t, initial)

	require.NoError(t, svc.Restore(context.Background(), parseRaw(t, `{"config":{"theme":"dark"}}`)))
	assert.Equal(t, "a", dashboard.Dashboard().ActiveCategoryID)
}

func TestSnapshotService_Restore_AppliesElementsWithEmptyTitle(t *testing.T) {
	svc, dashboard := newTestSnapshotSvc(t, models.DefaultDashboard())

	raw := parseRaw(t, `{
		"bookmarks":[
			{"id":"1","title":"A","url":"https://a.example","categoryId":"x"},
			{"id":"2","title":"","url":"https://b.example","categoryId":"x"}],
		"categories":[{"id":"x","name":"Cat","color":"bg-blue-500"}]}`)
	require.NoError(t, svc.Restore(context.Background(), raw))

	got := dashboard.Dashboard()
	assert.Equal(t, []models.Bookmark{
		{ID: "1", Title: "A", URL: "https://a.example", CategoryID: "x"},
		{ID: "2", URL: "https://b.example", CategoryID: "x"},
	}, got.Bookmarks)
	assert.Equal(t, []models.Category{{ID: "x", Name: "Cat", Color: "bg-blue-500"}}, got.Categories)
	assert.Equal(t, "x", got.ActiveCategoryID)
}

func TestSnapshotService_Restore_DropsOnlyUnstorableElements(t *testing.T) {
	svc, dashboard := newTestSnapshotSvc(t, models.DefaultDashboard())

	raw := parseRaw(t, `{
		"bookmarks":[{"id":"1","title":"a"},{"id":"1","title":"b"},"junk",{"title":"no id"}],
		"categories":[{"id":"c","name":"C"},{"name":"no id"}]}`)
	require.NoError(t, svc.Restore(context.Background(), raw))

	got := dashboard.Dashboard()
	assert.Equal(t, []models.Bookmark{{ID: "1", Title: "a"}}, got.Bookmarks)
	assert.Equal(t, []models.Category{{ID: "c", Name: "C"}}, got.Categories)
}

// ── Export / Import ──────────────────────────────────────────────────────────

func TestSnapshotService_Export_PrettyPrinted(t *testing.T) {
	svc, _ := newTestSnapshotSvc(t, models.DefaultDashboard())

	var buf bytes.Buffer
	require.NoError(t, svc.Export(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{\n  \"version\": 1,"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestSnapshotService_Import_InvalidFile(t *testing.T) {
	svc, _ := newTestSnapshotSvc(t, models.DefaultDashboard())

	for _, in := range []string{"", "[]", "null", "{oops"} {
		err := svc.Import(context.Background(), strings.NewReader(in))
		assert.ErrorIs(t, err, ErrInvalidSnapshotFile, in)
	}
}
