package lib

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

const (
	EC2TagName     = "Name"
	EC2TagHostname = "opsworks:instance"
	EC2TagStack    = "opsworks:stack"
)

type EC2API interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

func EC2Client(cfg *aws.Config) *ec2.Client {
	return ec2.NewFromConfig(*cfg)
}

// EC2Record is the flattened view of one instance. Nil pointers mean the tag
// or address was absent.
type EC2Record struct {
	InstanceID string
	Name       *string
	Hostname   *string
	Stack      *string
	State      string
	PublicIP   *string
	LaunchTime *time.Time
}

func (r EC2Record) Running() bool {
	return r.State == string(ec2types.InstanceStateNameRunning)
}

// DisplayName is the Name tag, or the instance id when untagged.
func (r EC2Record) DisplayName() string {
	if r.Name != nil {
		return *r.Name
	}
	return r.InstanceID
}

// EC2LookupTag returns the value of the first tag with key, or nil.
func EC2LookupTag(tags []ec2types.Tag, key string) *string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == key {
			val := aws.ToString(tag.Value)
			return &val
		}
	}
	return nil
}

func EC2RecordFrom(instance ec2types.Instance) EC2Record {
	r := EC2Record{
		InstanceID: aws.ToString(instance.InstanceId),
		Name:       EC2LookupTag(instance.Tags, EC2TagName),
		Hostname:   EC2LookupTag(instance.Tags, EC2TagHostname),
		Stack:      EC2LookupTag(instance.Tags, EC2TagStack),
		PublicIP:   instance.PublicIpAddress,
		LaunchTime: instance.LaunchTime,
	}
	if instance.State != nil {
		r.State = string(instance.State.Name)
	}
	return r
}

// EC2ListRecords describes every instance visible to the client, following
// pagination, and flattens reservations in order. Errors are not retried.
func EC2ListRecords(ctx context.Context, client EC2API) ([]EC2Record, error) {
	var records []EC2Record
	paginator := ec2.NewDescribeInstancesPaginator(client, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &ProviderError{Err: err}
		}
		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				records = append(records, EC2RecordFrom(instance))
			}
		}
	}
	return records, nil
}
