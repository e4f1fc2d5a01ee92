// Package schedule provides the domain model for a single day of planned
// activity blocks on the Heirclark timeline.
//
// # Overview
//
// A [Day] is a wake-time anchor plus an ordered set of [Block] values, each
// covering a wall-clock interval (a workout, a meal, a fasting window, a
// sleep window). Times are plain local wall-clock values with minute
// resolution, held as [Clock]. There are no dates and no timezones: the
// caller localizes before handing times to this package.
//
// # Wake anchor
//
// All downstream layout math is anchored to the day's wake time rather than
// literal midnight, so overnight blocks (sleep, late fasting windows) stay
// contiguous instead of splitting into two fragments. [DefaultAnchor] is
// 06:00, a typical wake time; manifests may override it.
//
// # Manifests
//
// [Load] reads a day schedule from a TOML or JSON manifest, detected by
// file extension. See the Load documentation for the manifest shape.
//
// # Related Packages
//
// The [overlap] subpackage computes the column-packing layout that places
// overlapping blocks side by side on the rendered timeline.
//
// [overlap]: github.com/heirclark/dayplan/pkg/schedule/overlap
package schedule
