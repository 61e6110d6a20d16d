// Package io provides JSON import and export for member graphs and
// infection results.
//
// # Graph Format
//
// A graph is a list of members, each declaring who coaches it (parents)
// and whom it coaches (children):
//
//	{
//	  "members": [
//	    {"id": 1, "parents": [3], "children": [], "version": 0},
//	    {"id": 3, "parents": [], "children": [1], "version": 0}
//	  ]
//	}
//
// Relationships may be declared on one side only; [ReadJSON] records them
// on both. Every referenced ID must appear as a member. The version field
// is optional and defaults to 0.
//
// [WriteJSON] always writes both sides of every relationship, with IDs
// sorted, so exports are stable and diff cleanly.
//
// # Result Format
//
// Infection results record how the set was produced:
//
//	{"seed": 42, "mode": "limited", "min": 300, "max": 500, "infected": [3, 42, 97]}
//
// min and max are omitted for total infections.
package io
