// Package models defines the typed conference domain graph.
//
// All entities are immutable once constructed and identified by externally
// assigned string ids. Cross-references (Talk -> SessionType/Track,
// ScheduleSlot -> Room/Talk) are pointers that stay nil when the external
// feed references an id that is not known, so a partially resolvable feed
// still yields usable entities.
package models
