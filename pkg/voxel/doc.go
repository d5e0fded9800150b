// Package voxel is the ingestion core of voxview: it parses terrain-map
// lines into validated records and partitions them by solidity.
//
// The package is pure. Parsing and classification never touch the file
// system, never log and carry no state between calls; [Load] drives a
// ports.LineSource through both stages and applies the caller's error
// policy (fail fast by default, skip-and-collect via [WithSkipBadLines]).
//
// Line format: "x,y,z,flag", four comma-separated fields. The coordinates
// are signed base-10 integers; the flag matches "true" case-insensitively
// and any other token reads as false unless [WithStrictFlags] is set.
package voxel
