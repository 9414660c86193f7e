package client

// Version is the current version of the client module. It is sent in the default User-Agent.
const Version = "1.0.0"
