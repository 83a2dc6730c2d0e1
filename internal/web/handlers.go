package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yt-trending/internal/format"
	"github.com/yt-trending/internal/models"
	"github.com/yt-trending/internal/session"
)

// Row is one rendered result line.
type Row struct {
	Rank         int
	Title        string
	WatchURL     string
	ThumbnailURL string
	MetricsLine  string
}

type dashboardView struct {
	Authenticated bool
	State         session.State
	Regions       []RegionOption
	CountOptions  []int

	LoginError  string
	Flash       string
	ConfigError string
	FetchError  string
	Empty       bool

	Region string
	Total  int
	Rows   []Row
}

func (s *Server) baseView(state session.State) dashboardView {
	return dashboardView{
		Authenticated: state.Authenticated,
		State:         state,
		Regions:       RegionOptions,
		CountOptions:  session.CountOptions,
		Flash:         state.Flash,
	}
}

func (s *Server) currentSession(c *gin.Context) (string, session.State, bool) {
	id, err := c.Cookie(sessionCookie)
	if err != nil {
		return "", session.State{}, false
	}
	state, ok := s.sessions.Get(id)
	return id, state, ok
}

// showDashboard renders the whole page top to bottom: login gate, config
// guard, trending fetch, subscriber enrichment, ranked rows. Any fatal
// problem halts the render at its guard with a message.
func (s *Server) showDashboard(c *gin.Context) {
	id, state, ok := s.currentSession(c)
	if !ok || !state.Authenticated {
		c.HTML(http.StatusOK, "dashboard.tmpl", s.baseView(session.State{}))
		return
	}

	view := s.baseView(state)
	if state.Flash != "" {
		// One-shot acknowledgment, cleared after this render.
		s.sessions.Update(id, func(st *session.State) { st.Flash = "" })
	}

	if err := s.cfg.Validate(); err != nil {
		view.ConfigError = "YOUTUBE_API_KEY가 설정되지 않았습니다. secrets.env 파일 또는 환경 변수에 설정하세요."
		c.HTML(http.StatusOK, "dashboard.tmpl", view)
		return
	}

	region := state.EffectiveRegion()
	view.Region = region

	items, err := s.trending.Videos(c.Request.Context(), region, state.MaxCount)
	if err != nil {
		s.logger.Error("trending fetch failed",
			slog.String("region", region),
			slog.String("error", err.Error()),
		)
		view.FetchError = err.Error()
		c.HTML(http.StatusOK, "dashboard.tmpl", view)
		return
	}
	if len(items) == 0 {
		view.Empty = true
		c.HTML(http.StatusOK, "dashboard.tmpl", view)
		return
	}

	channelIDs := make([]string, 0, len(items))
	for _, item := range items {
		channelIDs = append(channelIDs, item.Snippet.ChannelID)
	}
	subs := s.trending.Subscribers(c.Request.Context(), channelIDs)

	view.Rows = buildRows(items, subs)
	view.Total = len(items)
	c.HTML(http.StatusOK, "dashboard.tmpl", view)
}

// buildRows keeps the original API order; rank is position plus one.
func buildRows(items []models.Video, subs map[string]int64) []Row {
	rows := make([]Row, 0, len(items))
	for i, item := range items {
		channel := item.Snippet.ChannelTitle
		if channel == "" {
			channel = "(채널 정보 없음)"
		}
		views := item.Statistics.ViewCount
		if views == "" {
			views = "0"
		}

		parts := []string{channel, "👁 " + format.Count(views)}
		if likes := item.Statistics.LikeCount; likes != "" {
			parts = append(parts, "👍 "+format.Count(likes))
		}
		if comments := item.Statistics.CommentCount; comments != "" {
			parts = append(parts, "💬 "+format.Count(comments))
		}
		if n, ok := subs[item.Snippet.ChannelID]; ok {
			parts = append(parts, "👤 "+format.CountInt(n)+"명")
		}

		title := item.Snippet.Title
		if title == "" {
			title = "(제목 없음)"
		}

		row := Row{
			Rank:         i + 1,
			Title:        title,
			ThumbnailURL: item.Snippet.Thumbnails.BestURL(),
			MetricsLine:  strings.Join(parts, " · "),
		}
		if item.ID != "" {
			row.WatchURL = "https://www.youtube.com/watch?v=" + item.ID
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *Server) handleLogin(c *gin.Context) {
	id, err := s.sessions.Login(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		view := s.baseView(session.State{})
		view.LoginError = "아이디 또는 비밀번호가 올바르지 않습니다."
		c.HTML(http.StatusUnauthorized, "dashboard.tmpl", view)
		return
	}

	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleLogout(c *gin.Context) {
	if id, err := c.Cookie(sessionCookie); err == nil {
		s.sessions.Logout(id)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// handleControls applies control-bar changes as explicit state
// transitions. A changed preset wins over the custom field for that
// submit because selecting a preset overwrites the override.
func (s *Server) handleControls(c *gin.Context) {
	id, state, ok := s.currentSession(c)
	if !ok || !state.Authenticated {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	preset := c.PostForm("region_sel")
	custom, customSubmitted := c.GetPostForm("region_custom")

	s.sessions.Update(id, func(st *session.State) {
		if preset != "" && !strings.EqualFold(preset, st.RegionSel) {
			st.SelectRegion(preset)
		} else if customSubmitted {
			st.SetCustomRegion(custom)
		}
		if raw := c.PostForm("max_count"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				st.SetMaxCount(n)
			}
		}
	})
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleRefresh(c *gin.Context) {
	id, state, ok := s.currentSession(c)
	if !ok || !state.Authenticated {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	s.trending.Refresh()
	s.sessions.Update(id, func(st *session.State) {
		st.Flash = "캐시를 비웠습니다. 다시 불러오는 중…"
	})
	time.Sleep(s.delay)
	c.Redirect(http.StatusSeeOther, "/")
}
