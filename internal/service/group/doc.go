// Package group implements contact group management.
//
// A group is a named list of recipient addresses owned by one user. Groups
// are created and deleted but never edited. Sent records keep a weak
// reference to the group they went to, so deleting a group does not touch
// the send history.
//
// Repository implementations live in repository/postgres/.
package group
