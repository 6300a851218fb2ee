package server

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/cards"
	"github.com/Zachkp/portfolio/internal/sections"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/tracking"
)

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.index)
	r.GET("/sections/:name", s.section)
	r.POST("/sections/:name/visible", s.visible)
	r.GET("/sections/:name/filter", s.filter)
	r.GET("/projects/:id", s.projectDetail)
	r.DELETE("/projects/selected", s.clearSelection)
	r.GET("/api/sections/:name", s.sectionJSON)
	r.GET("/healthz", s.healthz)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	r.GET("/privacy", s.privacy)
}

// visitor resolves the session cookie, issuing a fresh one when needed.
func (s *Server) visitor(c *gin.Context) (string, *session.State) {
	cookie, _ := c.Cookie(session.CookieName)
	id, st := s.sessions.Get(cookie)
	if id != cookie {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(session.CookieName, id, int(s.sessionTTL/time.Second), "/", "", s.secure, true)
	}
	return id, st
}

// track forwards an event unless the visitor opted out.
func (s *Server) track(c *gin.Context, e tracking.Event) {
	if tracking.DoNotTrack(c) {
		return
	}
	s.tracker.TrackEvent(e)
}

func (s *Server) index(c *gin.Context) {
	_, st := s.visitor(c)

	var view sections.PageView
	st.Do(func(p *sections.Page) { view = p.View() })

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": s.title,
		"page":  view,
	})
}

// fragment renders the named section's template with its current view.
func fragment(c *gin.Context, status int, p *sections.Page, name string) {
	switch name {
	case sections.NameSkills:
		c.HTML(status, "section-skills.html", p.Skills.View())
	case sections.NameProjects:
		c.HTML(status, "section-projects.html", p.Projects.View())
	case sections.NameExperience:
		c.HTML(status, "section-experience.html", p.Experience.View())
	}
}

func notFound(c *gin.Context, err error) {
	c.String(http.StatusNotFound, err.Error())
}

func (s *Server) section(c *gin.Context) {
	name := c.Param("name")
	_, st := s.visitor(c)

	st.Do(func(p *sections.Page) {
		if _, err := p.Section(name); err != nil {
			notFound(c, err)
			return
		}
		fragment(c, http.StatusOK, p, name)
	})
}

func (s *Server) visible(c *gin.Context) {
	name := c.Param("name")
	ratio := 1.0
	if v := c.PostForm("ratio"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid ratio %q", v)
			return
		}
		ratio = parsed
	}

	id, st := s.visitor(c)
	st.Do(func(p *sections.Page) {
		fired, err := p.Observe(name, ratio)
		if err != nil {
			notFound(c, err)
			return
		}
		if fired {
			s.metrics.SectionRevealed(name)
			s.track(c, tracking.Event{Session: id, Kind: tracking.KindReveal, Section: name})
		}
		fragment(c, http.StatusOK, p, name)
	})
}

func (s *Server) filter(c *gin.Context) {
	name := c.Param("name")
	category := c.Query("category")

	id, st := s.visitor(c)
	st.Do(func(p *sections.Page) {
		sec, err := p.Section(name)
		if err != nil {
			notFound(c, err)
			return
		}
		sec.SelectCategory(category)

		known := slices.Contains(sec.Categories(), category)
		s.metrics.FilterSelected(name, category, known)
		s.track(c, tracking.Event{Session: id, Kind: tracking.KindFilter, Section: name, Label: category})
		fragment(c, http.StatusOK, p, name)
	})
}

func (s *Server) projectDetail(c *gin.Context) {
	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "project-modal.html", cards.ProjectModal{})
		return
	}

	id, st := s.visitor(c)
	st.Do(func(p *sections.Page) {
		if _, err := p.Projects.SelectRecord(projectID); err != nil {
			// The previous selection, if any, stays open.
			c.HTML(http.StatusNotFound, "project-modal.html", p.Projects.Modal())
			return
		}
		s.metrics.ProjectOpened(projectID)
		s.track(c, tracking.Event{
			Session:   id,
			Kind:      tracking.KindDetail,
			Section:   sections.NameProjects,
			ProjectID: projectID,
		})
		c.HTML(http.StatusOK, "project-modal.html", p.Projects.Modal())
	})
}

func (s *Server) clearSelection(c *gin.Context) {
	_, st := s.visitor(c)
	st.Do(func(p *sections.Page) {
		p.Projects.ClearSelection()
		c.HTML(http.StatusOK, "project-modal.html", p.Projects.Modal())
	})
}

func (s *Server) sectionJSON(c *gin.Context) {
	name := c.Param("name")
	_, st := s.visitor(c)

	st.Do(func(p *sections.Page) {
		switch name {
		case sections.NameSkills:
			c.JSON(http.StatusOK, p.Skills.View())
		case sections.NameProjects:
			c.JSON(http.StatusOK, p.Projects.View())
		case sections.NameExperience:
			c.JSON(http.StatusOK, p.Experience.View())
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": sections.ErrUnknownSection.Error()})
		}
	})
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"title":     s.title + " | Privacy",
		"retention": retentionText(s.retention),
	})
}

func retentionText(d time.Duration) string {
	days := int(d / (24 * time.Hour))
	switch {
	case d <= 0:
		return "the retention window"
	case days >= 365 && days%365 == 0:
		if days == 365 {
			return "12 months"
		}
		return fmt.Sprintf("%d years", days/365)
	case days == 1:
		return "1 day"
	case days > 1:
		return fmt.Sprintf("%d days", days)
	}
	return d.String()
}
