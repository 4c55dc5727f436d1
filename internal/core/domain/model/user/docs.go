// Package user contains the User aggregate, the Role enumeration with its
// ordering, and the Principal value passed into authorization checks.
package user
