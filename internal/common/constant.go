package common

// Version is the launcher version shown in the shell.
const Version = "1.0.0"
