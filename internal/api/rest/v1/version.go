package v1

// BasePath is the route prefix for version 1 of the API.
const BasePath = "/api/v1/mms"

// APIVersion is reported by the info endpoint.
const APIVersion = "0.43.8"

// ServiceName is reported by the info endpoint.
const ServiceName = "mentor-match-api"
