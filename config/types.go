package config

type Config struct {
	Debug    bool     `mapstructure:"debug"`
	Server   Server   `mapstructure:"server"`
	Metadata Metadata `mapstructure:"metadata"`
	Media    Media    `mapstructure:"media"`
}

type Server struct {
	Address string       `mapstructure:"address" validate:"required,hostname|ip"`
	Port    int          `mapstructure:"port" validate:"required,min=1,max=65535"`
	Limits  ServerLimits `mapstructure:"limits"`
}

type ServerLimits struct {
	MaxPayloadSize  int64 `mapstructure:"max_payload_size" validate:"required,min=1"`
	MaxFileSize     int64 `mapstructure:"max_file_size" validate:"required,min=1"`
	MaxFileCount    int   `mapstructure:"max_file_count" validate:"required,min=1"`
	MaxMultipartMem int64 `mapstructure:"max_multipart_mem" validate:"required,min=1"`
}

type Metadata struct {
	Strategy string                 `mapstructure:"strategy" validate:"required,oneof=mongo memory"`
	Mongo    *MongoMetadataStrategy `mapstructure:"mongo" validate:"required_if=Strategy mongo"`
}

type MongoMetadataStrategy struct {
	Uri        string `mapstructure:"uri" validate:"required"`
	Database   string `mapstructure:"database" validate:"required"`
	Collection string `mapstructure:"collection" validate:"required"`
}

type Media struct {
	Strategy string           `mapstructure:"strategy" validate:"required,oneof=s3 noop"`
	S3       *S3MediaStrategy `mapstructure:"s3" validate:"required_if=Strategy s3"`
}

type S3MediaStrategy struct {
	AccessKeyId string `mapstructure:"access_key_id" validate:"required"`
	SecretKeyId string `mapstructure:"secret_key_id" validate:"required"`
	Region      string `mapstructure:"region" validate:"required"`
	Bucket      string `mapstructure:"bucket" validate:"required"`
	Endpoint    string `mapstructure:"endpoint" validate:"omitempty,url"`
	PublicUrl   string `mapstructure:"public_url" validate:"required,url"`
	KeyPrefix   string `mapstructure:"key_prefix"`
}
