/*
Package surveyhub holds the build version of the survey payout node and its
tools.

The node itself lives in cmd/surveyd, the submission protocol in x/survey.
*/
package surveyhub
