// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types shared by the FlatNav client, the
// sync subsystem and the key-value proxy server.
package models

// Bookmark is a single link shown on the dashboard.
//
// IDs are stable for the lifetime of the bookmark and are never reused
// after deletion.
type Bookmark struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	CategoryID string `json:"categoryId"`
}

// Category groups bookmarks. The position of a category inside its
// collection is significant and must survive a sync round trip.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DashboardConfig carries the user-tunable presentation settings that are
// part of a backup.
type DashboardConfig struct {
	AppName     string `json:"appName"`
	AppSubtitle string `json:"appSubtitle"`
	AppFontSize string `json:"appFontSize"`
	Theme       string `json:"theme"`
}

// Dashboard is the complete application state owned by the dashboard
// service. Version grows by one on every mutation.
type Dashboard struct {
	Bookmarks        []Bookmark
	Categories       []Category
	Config           DashboardConfig
	ActiveCategoryID string
	Version          uint64
}

// Clone returns a deep copy of d so callers can read it without holding
// the owner's lock.
func (d Dashboard) Clone() Dashboard {
	out := d
	out.Bookmarks = append([]Bookmark(nil), d.Bookmarks...)
	out.Categories = append([]Category(nil), d.Categories...)
	return out
}

// HasCategory reports whether a category with id exists.
func (d Dashboard) HasCategory(id string) bool {
	for _, c := range d.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ConfigPatch is a partial [DashboardConfig] update. Nil fields are left
// unchanged; a non-nil empty string clears the field.
type ConfigPatch struct {
	AppName     *string
	AppSubtitle *string
	AppFontSize *string
	Theme       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ConfigPatch) IsEmpty() bool {
	return p.AppName == nil && p.AppSubtitle == nil && p.AppFontSize == nil && p.Theme == nil
}

// Apply returns cfg with the patch applied.
func (p ConfigPatch) Apply(cfg DashboardConfig) DashboardConfig {
	if p.AppName != nil {
		cfg.AppName = *p.AppName
	}
	if p.AppSubtitle != nil {
		cfg.AppSubtitle = *p.AppSubtitle
	}
	if p.AppFontSize != nil {
		cfg.AppFontSize = *p.AppFontSize
	}
	if p.Theme != nil {
		cfg.Theme = *p.Theme
	}
	return cfg
}
