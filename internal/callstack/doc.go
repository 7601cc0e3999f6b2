/*
The callstack package provides a Stack type which records the stages of a
program as they start and finish and reports how long each one took. The
reports go to the Stack's writer (standard error by default) so that they
do not mix with the program's output. The Tag method gives a prefix for
messages which reflects the depth of the stage being reported.
*/
package callstack
